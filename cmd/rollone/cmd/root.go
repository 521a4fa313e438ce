// Package cmd contains all CLI commands for the rollone tool.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/rollone/internal/config"
	"github.com/f3rmion/rollone/internal/logging"
	"github.com/f3rmion/rollone/internal/tables"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rollone",
	Short: "Roll on the random tables found in a block of text",
	Long: `rollone finds dice tables in loosely formatted text and rolls on them.

A table starts with a die header and lists one outcome per line:

  d6 What's in the chest?
  1-2 Gold
  3-5 A rusty sword
  6 A trap! d4 1 dart 2 gas 3 blade 4 pit

Ranges weight an outcome, and a die marker inside an outcome starts an
inline subtable that is rolled as well.

Text is read from the file argument, or from standard input when it is
missing or "-".`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/rollone)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log parser diagnostics")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("ROLLONE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// env is what every command needs after startup.
type env struct {
	dir    string
	cfg    *config.Config
	logger *zap.Logger
}

// setup loads config.yaml and builds the logger. Flags and ROLLONE_*
// variables override the file.
func setup() (*env, error) {
	dir := getConfigDir()
	cfg, err := config.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	if level := viper.GetString("log.level"); level != "" {
		cfg.Log.Level = level
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("config loaded",
		zap.String("dir", dir),
		zap.Int("max_depth", cfg.MaxDepth),
		zap.Bool("history", cfg.History.Enabled),
	)
	return &env{dir: dir, cfg: cfg, logger: logger}, nil
}

// parser builds a table parser that logs diagnostics, plus any extra sinks.
func (e *env) parser(extra ...tables.Sink) *tables.Parser {
	sinks := append([]tables.Sink{logging.NewSink(e.logger)}, extra...)
	return tables.NewParser(
		tables.WithSink(tables.Tee(sinks...)),
		tables.WithMaxDepth(e.cfg.MaxDepth),
	)
}

// readInput reads the text named by args: a file path, or standard input
// for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, tables.Origin, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", tables.Origin{}, fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), tables.Origin{Kind: tables.OriginText, Description: "standard input"}, nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return "", tables.Origin{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), tables.Origin{
		Kind:        tables.OriginText,
		ID:          path,
		Description: filepath.Base(path),
	}, nil
}
