// SPDX-License-Identifier: MIT
// Package: lvlrand/cmd/lvlrand/cmd
//
// Package cmd implements the commands of the lvlrand executable.
//
// Every flag is bound to a per-command-tree viper instance, so values may
// also come from LVLRAND_* environment variables (dots become underscores)
// or from a --config file. Sub-command keys are namespaced by command name,
// e.g. "generate.n" / LVLRAND_GENERATE_N.
package cmd

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlrand/internal/logging"
	"github.com/katalvlaran/lvlrand/prng"
	"github.com/katalvlaran/lvlrand/source"
)

const (
	envPrefix = "LVLRAND"

	cfgConfig    = "config"
	cfgAlgorithm = "algorithm"
	cfgSeed      = "seed"
	cfgSeedTime  = "time-seed"
	cfgLogLevel  = "log.level"
	cfgLogFormat = "log.format"
)

// env is the state shared by the command tree.
type env struct {
	v      *viper.Viper
	logger log.Logger
}

// NewRootCommand returns the lvlrand command tree.
func NewRootCommand() *cobra.Command {
	e := &env{v: viper.New(), logger: log.NewNopLogger()}

	root := &cobra.Command{
		Use:          "lvlrand",
		Short:        "Deterministic random stream generator and validator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd)
		},
	}

	logLevel := logging.LevelWarn
	logFormat := logging.FmtLogfmt

	fs := root.PersistentFlags()
	fs.String(cfgConfig, "", "config file (any format viper reads)")
	fs.String(cfgAlgorithm, source.Default.String(),
		fmt.Sprintf("uniform algorithm %v", source.Algorithms()))
	fs.Uint32(cfgSeed, 0, "seed (derived from time and PID when unset)")
	fs.Bool(cfgSeedTime, false, "derive the seed from time and PID even if --seed is set")
	fs.Var(&logLevel, cfgLogLevel, "log level")
	fs.Var(&logFormat, cfgLogFormat, "log format")

	e.v.SetEnvPrefix(envPrefix)
	e.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	e.v.AutomaticEnv()
	e.bind(fs, "")

	root.AddCommand(
		newGenerateCmd(e),
		newCompareCmd(e),
		newHistogramCmd(e),
		newDrawCmd(e),
	)

	return root
}

// bind registers every flag of fs under prefix (plus a dot, when non-empty).
func (e *env) bind(fs *flag.FlagSet, prefix string) {
	fs.VisitAll(func(f *flag.Flag) {
		key := f.Name
		if prefix != "" {
			key = prefix + "." + key
		}
		_ = e.v.BindPFlag(key, f)
	})
}

// init loads the config file and builds the logger.
func (e *env) init(cmd *cobra.Command) error {
	if cfgFile := e.v.GetString(cfgConfig); cfgFile != "" {
		e.v.SetConfigFile(cfgFile)
		if err := e.v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	var lvl logging.Level
	if err := lvl.Set(e.v.GetString(cfgLogLevel)); err != nil {
		return err
	}
	var format logging.Format
	if err := format.Set(e.v.GetString(cfgLogFormat)); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), format, lvl)
	if err != nil {
		return err
	}
	e.logger = logging.Module(logger, "lvlrand")
	_ = level.Debug(e.logger).Log("msg", "configuration loaded", "command", cmd.Name(), "config", e.v.ConfigFileUsed())

	return nil
}

// generator builds an uninitialized generator for the configured algorithm.
func (e *env) generator() (*prng.Generator, error) {
	alg, err := source.ParseAlgorithm(e.v.GetString(cfgAlgorithm))
	if err != nil {
		return nil, err
	}

	return prng.New(
		prng.WithAlgorithm(alg),
		prng.WithLogger(log.With(e.logger, "component", "prng")),
	), nil
}

// seededGenerator builds a generator and initializes it from --seed, or from
// time when no seed was given or --time-seed is set.
func (e *env) seededGenerator() (*prng.Generator, error) {
	g, err := e.generator()
	if err != nil {
		return nil, err
	}

	if e.v.GetBool(cfgSeedTime) || !e.v.IsSet(cfgSeed) {
		g.InitializeFromTime()
	} else {
		g.Initialize(e.v.GetUint32(cfgSeed))
	}

	return g, nil
}
