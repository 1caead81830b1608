// Package config loads the invoicify settings from defaults, an optional
// config file and INVOICIFY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the settings of the application.
type Config struct {
	Storage  StorageConfig
	Export   ExportConfig
	Print    PrintConfig
	Currency string
	Verbose  bool
}

type StorageConfig struct {
	Driver string // "file" or "sqlite"
	Dir    string
}

type ExportConfig struct {
	Dir  string
	File string
}

type PrintConfig struct {
	Command string
}

// Dir returns the invoicify config directory, honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "invoicify"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "invoicify"), nil
}

// DataDir returns the directory where invoicify keeps the invoice, honoring
// XDG_DATA_HOME.
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "invoicify"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "invoicify"), nil
}

// Load reads the configuration. file is an explicit config file, when empty
// invoicify.yaml is looked up in the config directory and is optional.
func Load(file string) (*Config, error) {
	v := viper.New()

	dir, err := Dir()
	if err != nil {
		return nil, fmt.Errorf("cannot locate config directory: %w", err)
	}
	dataDir, err := DataDir()
	if err != nil {
		return nil, fmt.Errorf("cannot locate data directory: %w", err)
	}

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.dir", dataDir)
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.file", "invoice.pdf")
	v.SetDefault("print.command", "lp")
	v.SetDefault("currency", "USD")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("INVOICIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file %q: %w", file, err)
		}
	} else {
		v.SetConfigName("invoicify")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("cannot read config file: %w", err)
			}
			log.Printf("no config file in %s, using defaults and environment", dir)
		}
	}

	return &Config{
		Storage: StorageConfig{
			Driver: v.GetString("storage.driver"),
			Dir:    v.GetString("storage.dir"),
		},
		Export: ExportConfig{
			Dir:  v.GetString("export.dir"),
			File: v.GetString("export.file"),
		},
		Print: PrintConfig{
			Command: v.GetString("print.command"),
		},
		Currency: strings.ToUpper(v.GetString("currency")),
		Verbose:  v.GetBool("verbose"),
	}, nil
}

// ExportPath returns the path of the exported PDF.
func (c *Config) ExportPath() string { return filepath.Join(c.Export.Dir, c.Export.File) }
