package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattsolo1/grove-core/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-novel/pkg/recent"
	"github.com/mattsolo1/grove-novel/pkg/service"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
)

// InitConfig loads the config file and environment. Only a config file that
// cannot be found is tolerated.
func InitConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "novel")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NOVEL")

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "novel"))
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("status_file", "")
	viper.SetDefault("max_recent", recent.DefaultMaxEntries)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// NewLogger builds the logger shared by all commands.
func NewLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logrus.NewEntry(logger).WithField("app", "novel")
}

func InitService() (*service.Service, error) {
	config := &service.Config{
		DataDir:    viper.GetString("data_dir"),
		StatusFile: viper.GetString("status_file"),
		MaxRecent:  viper.GetInt("max_recent"),
		AppVersion: version.GetInfo().Version,
	}

	return service.New(config, service.NewConsoleHost(os.Stderr, quiet), NewLogger())
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/novel/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not print status messages")
}
