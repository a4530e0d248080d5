// Config loading for the sprintboard CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/sprintboard/pkg/board"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir = "data_dir"
	cfgKeyColumns = "columns"
)

// boardConfig is the loaded configuration, set by PersistentPreRunE.
var boardConfig *viper.Viper

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Sprintboard CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Workflow columns, in board order. Exactly one column must have type
# "starting" and exactly one type "done". points_limit caps the total
# estimate a column may hold; omit it for no limit.
columns:
  - name: todo
    type: starting
  - name: doing
    type: normal
    points_limit: 15
  - name: done
    type: done
`

// columnConfig mirrors one entry of the columns list in config.yaml.
type columnConfig struct {
	Name        string `mapstructure:"name"`
	Type        string `mapstructure:"type"`
	PointsLimit *int   `mapstructure:"points_limit"`
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// boardFromConfig builds a board from the columns list in config.yaml.
// Column order in the file is board order; board validation (exactly
// one starting, exactly one done column) applies unchanged.
func boardFromConfig(cfg *viper.Viper) (*board.Board, error) {
	var entries []columnConfig
	if err := cfg.UnmarshalKey(cfgKeyColumns, &entries); err != nil {
		return nil, fmt.Errorf("parse columns config: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("config defines no columns: %w", board.ErrNoStartColumn)
	}

	columns := make([]*board.Column, 0, len(entries))
	for _, entry := range entries {
		col, err := board.NewColumn(entry.Name, board.ColumnType(entry.Type))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", entry.Name, err)
		}
		if entry.PointsLimit != nil {
			if err := col.SetPointsLimit(*entry.PointsLimit); err != nil {
				return nil, fmt.Errorf("column %q: %w", entry.Name, err)
			}
		}
		columns = append(columns, col)
	}

	return board.NewBoard(columns...)
}
