// Command facet renders component families from the command line.
//
// It wires the built-in catalog filter family, the log and cache
// decorators, a viper-backed configuration file and a YAML catalog into
// an engine, so rendered fragments and their cache metadata can be
// inspected without a storefront around them.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hkft/facet"
	"github.com/hkft/facet/catalogfilter"
	"github.com/hkft/facet/lib/catalogfile"
	"github.com/hkft/facet/lib/fragcache"
	"github.com/hkft/facet/lib/viperconf"
)

const version = "0.1.0"

var (
	flagConfig    string
	flagCatalog   string
	flagVerbose   bool
	flagLogFormat string

	logger zerolog.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "facet",
		Short:         "Render cacheable storefront fragments",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogging()
		},
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "facet.yaml", "configuration file")
	root.PersistentFlags().StringVar(&flagCatalog, "catalog", "catalog.yaml", "catalog data file")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "log output format (console or json)")
	root.AddCommand(renderCmd(), componentsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func setupLogging() {
	var out io.Writer = os.Stderr
	if flagLogFormat != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func exitCode(err error) int {
	switch {
	case facet.IsNotFound(err):
		return 2
	case facet.IsContentFetch(err):
		return 3
	default:
		return 1
	}
}

// buildEngine loads the configuration and catalog files and wires the
// built-in family and decorators.
func buildEngine() (*facet.Engine, *facet.Registry, error) {
	conf, err := viperconf.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := catalogfile.Load(flagCatalog)
	if err != nil {
		return nil, nil, err
	}

	reg := facet.NewRegistry()
	if err := catalogfilter.Register(reg); err != nil {
		return nil, nil, err
	}
	cache := fragcache.New(fragcache.WithTTL(time.Minute))
	if err := reg.RegisterDecorator("log", facet.LogDecorator()); err != nil {
		return nil, nil, err
	}
	if err := reg.RegisterDecorator("cache", fragcache.Decorator(cache)); err != nil {
		return nil, nil, err
	}

	eng := facet.NewEngine(reg, conf, catalog, facet.WithLogger(logger))
	return eng, reg, nil
}
