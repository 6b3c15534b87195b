// Copyright 2019 - 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/samply/axisctl/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// configEnv names the config file if --config is not given.
const configEnv = "AXISCTL_CONFIG"

var configFile string
var verbose bool
var noProgress bool

var logger = zap.NewNop()
var settings = config.NewStore()

func initLogger() error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func loadConfig() error {
	filename := configFile
	if filename == "" {
		filename = os.Getenv(configEnv)
	}
	if filename == "" {
		settings = config.NewStore()
		return nil
	}
	s, err := config.Load(filename)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", zap.String("file", filename), zap.Strings("keys", s.Keys()))
	settings = s
	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "axisctl",
	Short: "Build Axis Expressions from the Command Line",
	Long: `axisctl is a command line tool to build the axis expressions a
tabulation engine uses to group, net and summarize the categories of a
survey question.

Currently you can build basic, top/bottom box and netted axes, check group
configurations, inspect axes element by element and build all axes of a
project file at once.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		if err := initLogger(); err != nil {
			return err
		}
		return loadConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (default $"+configEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	rootCmd.PersistentFlags().BoolVarP(&noProgress, "no-progress", "", false, "don't show progress bar")
}
