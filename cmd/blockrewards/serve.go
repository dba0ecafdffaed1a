package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server/httprest"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/cache"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/db"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/eth/rewards"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/lookup"
	"github.com/prysmaticlabs/blockrewards/cmd/blockrewards/flags"
	"github.com/prysmaticlabs/blockrewards/monitoring/backup"
	"github.com/prysmaticlabs/blockrewards/monitoring/prometheus"
	"github.com/prysmaticlabs/blockrewards/runtime"
	"github.com/urfave/cli/v2"
)

var serveFlags = []cli.Flag{
	flags.HTTPHostFlag,
	flags.HTTPPortFlag,
	flags.HTTPCorsDomainFlag,
	flags.HTTPTimeoutFlag,
	flags.RewardsCacheFlag,
	flags.MonitoringHostFlag,
	flags.MonitoringPortFlag,
	flags.DisableMonitoringFlag,
}

var serveCmd = &cli.Command{
	Name:   "serve",
	Usage:  "Serve the beacon API block rewards endpoint from the database",
	Flags:  serveFlags,
	Action: serveAction,
}

func serveAction(cliCtx *cli.Context) error {
	ctx, cancel := context.WithCancel(cliCtx.Context)
	defer cancel()

	dataDir := cliCtx.String(flags.DataDirFlag.Name)
	d, err := db.NewDB(ctx, dataDir)
	if err != nil {
		return errors.Wrap(err, "could not open database")
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.WithError(err).Error("Could not close database")
		}
	}()

	registry, err := registerServices(ctx, cliCtx, d, filepath.Join(dataDir, "backups"))
	if err != nil {
		return err
	}
	registry.StartAll()
	defer registry.StopAll()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)
	select {
	case sig := <-sigc:
		log.WithField("signal", sig).Info("Got interrupt, shutting down...")
	case <-ctx.Done():
	}
	return nil
}

// registerServices builds the rewards HTTP server and, unless disabled, the monitoring server
// exposing metrics and database backups.
func registerServices(ctx context.Context, cliCtx *cli.Context, d db.Database, backupDir string) (*runtime.ServiceRegistry, error) {
	registry := runtime.NewServiceRegistry()

	rewardsServer := &rewards.Server{
		Blocker:             &lookup.BeaconDbBlocker{BeaconDB: d},
		Stater:              &lookup.StateProvider{BeaconDB: d},
		FinalizationFetcher: d,
		BlockRewardFetcher:  &rewards.BlockRewardService{},
	}
	if cliCtx.Bool(flags.RewardsCacheFlag.Name) {
		c, err := cache.NewBlockRewardsCache()
		if err != nil {
			return nil, errors.Wrap(err, "could not create rewards cache")
		}
		rewardsServer.RewardsCache = c
	}
	router := mux.NewRouter()
	rewardsServer.RegisterRoutes(router)

	origins := strings.Split(cliCtx.String(flags.HTTPCorsDomainFlag.Name), ",")
	srv, err := httprest.New(ctx,
		httprest.WithRouter(router),
		httprest.WithHTTPAddr(fmt.Sprintf("%s:%d", cliCtx.String(flags.HTTPHostFlag.Name), cliCtx.Int(flags.HTTPPortFlag.Name))),
		httprest.WithAllowedOrigins(origins),
		httprest.WithTimeout(cliCtx.Duration(flags.HTTPTimeoutFlag.Name)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create rewards HTTP server")
	}
	if err := registry.RegisterService(srv); err != nil {
		return nil, err
	}

	if cliCtx.Bool(flags.DisableMonitoringFlag.Name) {
		return registry, nil
	}
	promSvc := prometheus.NewService(
		fmt.Sprintf("%s:%d", cliCtx.String(flags.MonitoringHostFlag.Name), cliCtx.Int(flags.MonitoringPortFlag.Name)),
		registry,
		prometheus.Handler{Path: "/db/backup", Handler: backup.Handler(d, backupDir)},
	)
	if err := registry.RegisterService(promSvc); err != nil {
		return nil, err
	}
	return registry, nil
}
