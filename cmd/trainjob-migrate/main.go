// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the trainjob-migrate CLI, which
// rewrites Kubeflow Training Operator v1 PyTorchJob manifests as Kubeflow
// Trainer v2 TrainJob manifests.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trainjob-migrate/internal/logging"
	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log-level setting before any subcommand runs.
var logger = logging.Discard()

// rootCmd is the base command for the trainjob-migrate CLI.
var rootCmd = &cobra.Command{
	Use:   "trainjob-migrate",
	Short: "Convert PyTorchJob manifests to TrainJob manifests",
	Long: `trainjob-migrate translates Kubeflow Training Operator v1 PyTorchJob
manifests into Kubeflow Trainer v2 TrainJob manifests.

Master and Worker replicas are flattened into trainer.numNodes, the first
container becomes the trainer spec, and the runtime reference is chosen from
the container's GPU resources. Documents of other kinds pass through
unchanged. Use convert to write files and inspect to preview a conversion.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetString("log-level"), os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		logger.WithField("config", viper.ConfigFileUsed()).Debug("configuration loaded")
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	def := types.DefaultMigrationConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./trainjob-migrate.yaml or ~/.config/trainjob-migrate/config.yaml)")
	flags.String("log-level", logging.DefaultLevel, "log level: debug, info, warn, or error")
	flags.String("gpu-resource", def.Runtime.GPUResource, "resource name that marks a GPU trainer")
	flags.String("gpu-runtime", def.Runtime.GPURuntime, "runtimeRef name for GPU trainers")
	flags.String("default-runtime", def.Runtime.DefaultRuntime, "runtimeRef name for all other trainers")

	for _, key := range []string{"log-level", "gpu-resource", "gpu-runtime", "default-runtime"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("trainjob-migrate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "trainjob-migrate"))
		}
	}

	viper.SetEnvPrefix("TRAINJOB_MIGRATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// migrationConfig assembles the batch driver settings from viper, which
// layers flags over environment over config file over defaults.
func migrationConfig() types.MigrationConfig {
	cfg := types.DefaultMigrationConfig()
	cfg.Runtime = types.RuntimeConfig{
		GPUResource:    viper.GetString("gpu-resource"),
		GPURuntime:     viper.GetString("gpu-runtime"),
		DefaultRuntime: viper.GetString("default-runtime"),
	}.WithDefaults()
	if s := viper.GetString("output-suffix"); s != "" {
		cfg.OutputSuffix = s
	}
	if exts := viper.GetStringSlice("extensions"); len(exts) > 0 {
		cfg.Extensions = normalizeExtensions(exts)
	}
	return cfg
}

// normalizeExtensions lower-cases extensions and adds the leading dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// newLogEntry tags log lines with the running subcommand.
func newLogEntry(cmd *cobra.Command) *logrus.Entry {
	return logger.WithField("command", cmd.Name())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
