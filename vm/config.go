// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"time"
)

type Config struct {
	BuildInterval time.Duration `serialize:"true" json:"buildInterval" mapstructure:"build-interval"`

	MempoolSize       int `serialize:"true" json:"mempoolSize" mapstructure:"mempool-size"`
	BlockCacheSize    int `serialize:"true" json:"blockCacheSize" mapstructure:"block-cache-size"`
	ActivityCacheSize int `serialize:"true" json:"activityCacheSize" mapstructure:"activity-cache-size"`

	// MaxEventRange bounds the number of heights a single events request
	// may span.
	MaxEventRange uint64 `serialize:"true" json:"maxEventRange" mapstructure:"max-event-range"`

	// DatabaseDir holds the leveldb state. Empty keeps state in memory.
	DatabaseDir string `serialize:"true" json:"databaseDir" mapstructure:"db-dir"`

	HTTPAddr string `serialize:"true" json:"httpAddr" mapstructure:"http-addr"`
	LogLevel string `serialize:"true" json:"logLevel" mapstructure:"log-level"`
}

func (c *Config) SetDefaults() {
	c.BuildInterval = 500 * time.Millisecond

	c.MempoolSize = 1024
	c.BlockCacheSize = 128
	c.ActivityCacheSize = 128
	c.MaxEventRange = 1024

	c.HTTPAddr = "127.0.0.1:9650"
	c.LogLevel = "info"
}
