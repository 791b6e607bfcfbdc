// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "assetvm" serves the asset VM over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/assetvm/cmd/assetvm/version"
	"github.com/ava-labs/assetvm/vm"
)

const shutdownTimeout = 5 * time.Second

var (
	configFile  string
	genesisFile string

	rootCmd = &cobra.Command{
		Use:        "assetvm",
		Short:      "AssetVM node",
		SuggestFor: []string{"assetvm"},
		PreRunE:    loadConfig,
		RunE:       runFunc,
	}
)

func init() {
	cobra.EnablePrefixMatching = true

	registerFlags(rootCmd.Flags())

	rootCmd.AddCommand(
		version.NewCommand(),
	)
}

func registerFlags(flags *pflag.FlagSet) {
	var defaults vm.Config
	defaults.SetDefaults()

	flags.StringVar(&configFile, "config-file", "", "optional config file (json, yaml or toml)")
	flags.StringVar(&genesisFile, "genesis-file", "genesis.json", "genesis file path")
	flags.Duration("build-interval", defaults.BuildInterval, "time to batch pending transactions before building a block")
	flags.Int("mempool-size", defaults.MempoolSize, "maximum number of pending transactions")
	flags.Int("block-cache-size", defaults.BlockCacheSize, "number of accepted blocks kept in memory")
	flags.Int("activity-cache-size", defaults.ActivityCacheSize, "number of recent transactions served by recentActivity")
	flags.Uint64("max-event-range", defaults.MaxEventRange, "maximum number of heights one events request may span")
	flags.String("db-dir", defaults.DatabaseDir, "leveldb state directory (empty keeps state in memory)")
	flags.String("http-addr", defaults.HTTPAddr, "address to serve JSON-RPC on")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "assetvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

var config vm.Config

func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.SetEnvPrefix("ASSETVM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	if err := v.Unmarshal(&config); err != nil {
		return err
	}

	lvl, err := log.LvlFromString(config.LogLevel)
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	return nil
}

func runFunc(cmd *cobra.Command, args []string) error {
	genesisBytes, err := os.ReadFile(genesisFile)
	if err != nil {
		return err
	}

	db, err := vm.OpenDatabase(config.DatabaseDir)
	if err != nil {
		return err
	}
	node := vm.New(db)
	if err := node.Initialize(genesisBytes, config); err != nil {
		_ = db.Close()
		return err
	}
	handlers, err := node.Handlers()
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	for endpoint, h := range handlers {
		mux.Handle(endpoint, h)
	}
	srv := &http.Server{Addr: config.HTTPAddr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("serving", "addr", config.HTTPAddr, "endpoint", vm.PublicEndpoint)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return node.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	err = g.Wait()
	if serr := node.Shutdown(); serr != nil && err == nil {
		err = serr
	}
	log.Info("stopped")
	return err
}
