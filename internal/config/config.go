package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	appName  = "tictactoe"
	fileName = "config.yml"

	// PathEnv - overrides the config file lookup.
	PathEnv = "TICTACTOE_CONFIG"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	UI       UI     `yaml:"ui"`
}

type UI struct {
	NoMouse    bool `yaml:"disable-mouse" env:"TICTACTOE_UI_DISABLE_MOUSE"`
	CellWidth  int  `yaml:"cell-width" env:"TICTACTOE_UI_CELL_WIDTH" env-default:"7"`
	CellHeight int  `yaml:"cell-height" env:"TICTACTOE_UI_CELL_HEIGHT" env-default:"3"`
}

// MustLoad - load all configurations from the file at path, or from the environment only when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// Path - finds the config file: $TICTACTOE_CONFIG, the XDG config dirs, then the working directory.
// Returns an empty string when there is no config file.
func Path(workDir string) string {
	if path := os.Getenv(PathEnv); path != "" {
		return path
	}

	if path, err := xdg.SearchConfigFile(filepath.Join(appName, fileName)); err == nil {
		return path
	}

	local := filepath.Join(workDir, fileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	return ""
}

// DefaultLogFile - the log file used when log-file is not set.
func DefaultLogFile() (string, error) {
	path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve log file: %w", err)
	}

	return path, nil
}
