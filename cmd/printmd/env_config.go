package main

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/printmd/printmd/internal/config"
)

// envConfig holds settings read from PRINTMD_* environment variables.
// Precedence is CLI flags > environment > config file > defaults.
type envConfig struct {
	ConfigPath string        // PRINTMD_CONFIG
	Style      string        // PRINTMD_STYLE
	Timeout    time.Duration // PRINTMD_TIMEOUT
	Printer    string        // PRINTMD_PRINTER
	InputDir   string        // PRINTMD_INPUT_DIR
	OutputDir  string        // PRINTMD_OUTPUT_DIR
	PageSize   string        // PRINTMD_PAGE_SIZE
	Workers    int           // PRINTMD_WORKERS
}

// knownEnvVars lists all PRINTMD_ variables the CLI understands. Anything
// else with the prefix triggers a typo warning. PRINTMD_CONTAINER is read
// by the doctor command, not by configuration loading.
var knownEnvVars = map[string]bool{
	"PRINTMD_CONFIG":     true,
	"PRINTMD_STYLE":      true,
	"PRINTMD_TIMEOUT":    true,
	"PRINTMD_PRINTER":    true,
	"PRINTMD_INPUT_DIR":  true,
	"PRINTMD_OUTPUT_DIR": true,
	"PRINTMD_PAGE_SIZE":  true,
	"PRINTMD_WORKERS":    true,
	"PRINTMD_CONTAINER":  true,
}

// loadEnvConfig reads PRINTMD_* variables. Unparseable numeric values are
// silently ignored so a bad environment never blocks a render.
func loadEnvConfig() *envConfig {
	env := &envConfig{
		ConfigPath: os.Getenv("PRINTMD_CONFIG"),
		Style:      os.Getenv("PRINTMD_STYLE"),
		Printer:    os.Getenv("PRINTMD_PRINTER"),
		InputDir:   os.Getenv("PRINTMD_INPUT_DIR"),
		OutputDir:  os.Getenv("PRINTMD_OUTPUT_DIR"),
		PageSize:   os.Getenv("PRINTMD_PAGE_SIZE"),
	}

	if v := os.Getenv("PRINTMD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			env.Timeout = d
		}
	}
	if v := os.Getenv("PRINTMD_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.Workers = n
		}
	}

	return env
}

// warnUnknownEnvVars flags PRINTMD_ variables that the CLI does not
// recognize, which usually means a typo like PRINTMD_TIMEOUTS.
func warnUnknownEnvVars(logger *log.Logger) {
	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "PRINTMD_") {
			continue
		}
		if !knownEnvVars[name] {
			logger.Warnf("unknown environment variable %s (typo?)", name)
		}
	}
}

// applyEnvConfig fills config fields from the environment, but only where
// the config file left them empty. CLI flags are merged afterwards and
// override both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.Printer != "" && cfg.Printer.Name == "" {
		cfg.Printer.Name = env.Printer
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
}

// defaultConfigName is looked up in the working directory and the user
// config directory when no --config flag or PRINTMD_CONFIG is given.
const defaultConfigName = "printmd"

// loadConfig resolves the effective configuration. An explicit name from
// the flag or environment must exist; the implicit default config is
// optional and its absence falls back to built-in defaults.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		return config.LoadConfig(name)
	}

	cfg, err := config.LoadConfig(defaultConfigName)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
