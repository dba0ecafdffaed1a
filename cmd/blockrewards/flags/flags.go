// Package flags defines the command line flags of the blockrewards tool.
package flags

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"
)

var (
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFileName specifies the log output file name.
	LogFileName = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// DataDirFlag defines a path on disk.
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the blocks and pre-states database",
		Value: DefaultDataDir(),
	}
	// ConfigFileFlag specifies the filepath to load flag values.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "The filepath to a yaml file with flag values",
	}
	// ChainConfigFileFlag specifies the filepath to load chain config values.
	ChainConfigFileFlag = &cli.StringFlag{
		Name:  "chain-config-file",
		Usage: "The path to a YAML file with chain config values",
	}
	// MinimalConfigFlag enables the minimal preset.
	MinimalConfigFlag = &cli.BoolFlag{
		Name:  "minimal-config",
		Usage: "Use the minimal preset instead of mainnet.",
	}
	// BlockFileFlag is the path to a signed block in beacon API JSON or YAML.
	BlockFileFlag = &cli.StringFlag{
		Name:     "block",
		Usage:    "Path to a signed beacon block in beacon API json (or yaml) format",
		Required: true,
	}
	// PreStateFileFlag is the path to the state the block was applied to.
	PreStateFileFlag = &cli.StringFlag{
		Name:     "pre-state",
		Usage:    "Path to the beacon state the block was applied to, in beacon API json (or yaml) format",
		Required: true,
	}
	// BlockRootFlag is the root the block is stored under.
	BlockRootFlag = &cli.StringFlag{
		Name:     "block-root",
		Usage:    "0x-prefixed root of the block, used as its database key",
		Required: true,
	}
	// FinalizedSlotFlag marks every stored block up to this slot as finalized.
	FinalizedSlotFlag = &cli.Uint64Flag{
		Name:  "finalized-slot",
		Usage: "Record this slot as the latest finalized slot",
	}
	// StartSlotFlag is the first slot of a batch.
	StartSlotFlag = &cli.Uint64Flag{
		Name:  "start-slot",
		Usage: "First slot (inclusive) to compute rewards for",
	}
	// EndSlotFlag is the last slot of a batch.
	EndSlotFlag = &cli.Uint64Flag{
		Name:     "end-slot",
		Usage:    "Last slot (inclusive) to compute rewards for",
		Required: true,
	}
	// WorkersFlag bounds the number of blocks computed concurrently.
	WorkersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of blocks to compute concurrently",
		Value: runtime.NumCPU(),
	}
	// HTTPHostFlag defines the host on which the rewards API listens.
	HTTPHostFlag = &cli.StringFlag{
		Name:  "http-host",
		Usage: "Host on which the beacon rewards API listens",
		Value: "127.0.0.1",
	}
	// HTTPPortFlag defines the port on which the rewards API listens.
	HTTPPortFlag = &cli.IntFlag{
		Name:  "http-port",
		Usage: "Port on which the beacon rewards API listens",
		Value: 3500,
	}
	// HTTPCorsDomainFlag lists the origins allowed to call the rewards API.
	HTTPCorsDomainFlag = &cli.StringFlag{
		Name:  "http-corsdomain",
		Usage: "Comma separated list of domains from which to accept cross origin requests",
		Value: "http://localhost:4200,http://localhost:7500,http://127.0.0.1:4200,http://127.0.0.1:7500",
	}
	// HTTPTimeoutFlag bounds the time spent serving a single request.
	HTTPTimeoutFlag = &cli.DurationFlag{
		Name:  "http-timeout",
		Usage: "Maximum duration of a single rewards API request",
		Value: 30 * time.Second,
	}
	// DisableColorFlag disables ANSI colors in table output.
	DisableColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colors in table output",
	}
	// RewardsCacheFlag enables the block rewards cache.
	RewardsCacheFlag = &cli.BoolFlag{
		Name:  "enable-rewards-cache",
		Usage: "Cache computed rewards by block root",
		Value: true,
	}
	// MonitoringHostFlag defines the host used to serve prometheus metrics.
	MonitoringHostFlag = &cli.StringFlag{
		Name:  "monitoring-host",
		Usage: "Host used for listening and responding metrics for prometheus.",
		Value: "127.0.0.1",
	}
	// MonitoringPortFlag defines the http port used to serve prometheus metrics.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to listening and respond metrics for prometheus.",
		Value: 8080,
	}
	// DisableMonitoringFlag defines a flag to disable the metrics collection.
	DisableMonitoringFlag = &cli.BoolFlag{
		Name:  "disable-monitoring",
		Usage: "Disable monitoring service.",
	}
	// EnableTracingFlag defines a flag to enable request tracing.
	EnableTracingFlag = &cli.BoolFlag{
		Name:  "enable-tracing",
		Usage: "Enable request tracing.",
	}
	// TracingProcessNameFlag defines a flag to specify a process name.
	TracingProcessNameFlag = &cli.StringFlag{
		Name:  "tracing-process-name",
		Usage: "The name to apply to tracing tag \"process_name\"",
	}
	// TracingEndpointFlag flag defines the http endpoint for serving traces to Jaeger.
	TracingEndpointFlag = &cli.StringFlag{
		Name:  "tracing-endpoint",
		Usage: "Tracing endpoint defines where traces are exposed to Jaeger.",
		Value: "http://127.0.0.1:14268/api/traces",
	}
	// TraceSampleFractionFlag defines a flag to indicate what fraction of requests are sampled.
	TraceSampleFractionFlag = &cli.Float64Flag{
		Name:  "trace-sample-fraction",
		Usage: "Indicate what fraction of requests are sampled for tracing.",
		Value: 0.20,
	}
)

// LogFormat and OutputFormat are enum flags; their values are validated on set.
var (
	// LogFormat specifies the log output format.
	LogFormat = NewEnumFlag("log-format", "Specify log formatting.", "text", "json", "fluentd")
	// OutputFormat selects how computed rewards are printed.
	OutputFormat = NewEnumFlag("output", "Output format of computed rewards.", "table", "json")
)

// DefaultDataDir is the default data directory to use for the database.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "BlockRewards")
	case "windows":
		return filepath.Join(home, "AppData", "Local", "BlockRewards")
	default:
		return filepath.Join(home, ".blockrewards")
	}
}
