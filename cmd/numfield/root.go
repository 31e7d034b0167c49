package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvas/numfield/algebraic"
	"github.com/vitalvas/numfield/config"
	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/xlogger"
)

type app struct {
	conf   config.Config
	logger *slog.Logger
	cache  *algebraic.Cache
	json   bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var configFile, logLevel, logFormat string

	cmd := &cobra.Command{
		Use:          "numfield",
		Short:        "Construct algebraic number fields and convert numbers into them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var opts []config.Option
			if configFile != "" {
				if _, err := os.Stat(configFile); err != nil {
					return fmt.Errorf("config file: %w", err)
				}
				opts = append(opts, config.WithFiles(configFile))
			}
			opts = append(opts, config.WithEnv(config.EnvPrefix))

			conf, err := config.Load(opts...)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				conf.Logger.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				conf.Logger.Format = logFormat
			}
			if err := conf.Validate(); err != nil {
				return err
			}

			conf.Logger.Output = cmd.ErrOrStderr()

			a.conf = conf
			a.logger = xlogger.New(conf.Logger)
			a.cache = algebraic.NewCache(
				algebraic.WithLogger(a.logger),
				algebraic.WithConfig(conf.Kernel),
			)

			a.logger.Debug("configuration loaded",
				"config_file", configFile,
				"kernel", conf.Kernel,
			)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML or JSON configuration file")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json")
	flags.BoolVar(&a.json, "json", false, "print results as JSON")

	cmd.AddCommand(
		newFieldCmd(a),
		newMinpolyCmd(a),
		newConvertCmd(a),
	)

	return cmd
}

func parseExprs(srcs []string) ([]expr.Expr, error) {
	exprs := make([]expr.Expr, len(srcs))
	for i, src := range srcs {
		e, err := expr.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", src, err)
		}
		exprs[i] = e
	}
	return exprs, nil
}
