// Package main is the blockrewards command line tool. It computes the rewards a proposer earned
// for a block from the block and its pre-state, stores blocks for later lookups and serves the
// beacon API block rewards endpoint.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/cmd/blockrewards/flags"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/monitoring/prometheus"
	"github.com/prysmaticlabs/blockrewards/monitoring/tracing"
	"github.com/prysmaticlabs/blockrewards/network/forks"
	"github.com/prysmaticlabs/blockrewards/runtime/logging"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	_ "go.uber.org/automaxprocs"
)

var log = logrus.WithField("prefix", "main")

var appFlags = []cli.Flag{
	flags.VerbosityFlag,
	flags.LogFileName,
	flags.LogFormat,
	flags.ConfigFileFlag,
	flags.ChainConfigFileFlag,
	flags.MinimalConfigFlag,
	flags.DataDirFlag,
	flags.EnableTracingFlag,
	flags.TracingProcessNameFlag,
	flags.TracingEndpointFlag,
	flags.TraceSampleFractionFlag,
}

func init() {
	appFlags = flags.WrapFlags(appFlags)
}

// stopTracing flushes and unregisters the trace exporter, if any.
var stopTracing = func() {}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{}
	app.Name = "blockrewards"
	app.Usage = "computes the rewards a beacon block proposer earned for a block"
	app.Flags = appFlags
	app.Commands = []*cli.Command{
		computeCmd,
		importCmd,
		batchCmd,
		serveCmd,
	}
	app.Before = before
	app.After = func(_ *cli.Context) error {
		stopTracing()
		return nil
	}
	return app
}

func before(ctx *cli.Context) error {
	// Load any flags from file, if specified.
	if ctx.IsSet(flags.ConfigFileFlag.Name) {
		if err := altsrc.InitInputSourceWithContext(
			appFlags,
			altsrc.NewYamlSourceFromFlagFunc(
				flags.ConfigFileFlag.Name))(ctx); err != nil {
			return err
		}
	}

	if err := logging.Configure(
		ctx.String(flags.LogFormat.Name),
		ctx.String(flags.VerbosityFlag.Name),
		ctx.String(flags.LogFileName.Name),
	); err != nil {
		return err
	}
	logrus.AddHook(prometheus.NewLogrusCollector())

	if err := configureChainConfig(ctx); err != nil {
		return err
	}

	shutdown, err := tracing.Setup(
		"blockrewards",
		ctx.String(flags.TracingProcessNameFlag.Name),
		ctx.String(flags.TracingEndpointFlag.Name),
		ctx.Float64(flags.TraceSampleFractionFlag.Name),
		ctx.Bool(flags.EnableTracingFlag.Name),
	)
	if err != nil {
		return err
	}
	stopTracing = shutdown
	return nil
}

func configureChainConfig(ctx *cli.Context) error {
	if ctx.Bool(flags.MinimalConfigFlag.Name) {
		log.Warn("Using minimal config")
		params.OverrideBeaconConfig(params.MinimalSpecConfig())
	}
	if ctx.IsSet(flags.ChainConfigFileFlag.Name) {
		if err := params.LoadChainConfigFile(ctx.String(flags.ChainConfigFileFlag.Name)); err != nil {
			return errors.Wrap(err, "could not load chain config file")
		}
	}
	schedule := make([]string, 0)
	for _, e := range forks.BeaconSchedule().Entries() {
		schedule = append(schedule, fmt.Sprintf("%s@%d", version.String(e.Version), e.Epoch))
	}
	log.WithFields(logrus.Fields{
		"config": params.BeaconConfig().ConfigName,
		"forks":  strings.Join(schedule, ","),
	}).Info("Loaded chain config")
	return nil
}
