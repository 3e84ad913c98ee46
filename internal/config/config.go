package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no path is given
const DefaultConfigFile = "tasktracker.yaml"

// Config holds all application configuration
type Config struct {
	// Input settings
	InputFile    string `yaml:"input_file"`
	AbortOnError bool   `yaml:"abort_on_error"`
	EchoCommands bool   `yaml:"echo_commands"`

	// Logging settings
	LogLevel string `yaml:"log_level"`
	LogDir   string `yaml:"log_dir"`

	// Shell settings
	Prompt      string `yaml:"prompt"`
	HistorySize int    `yaml:"history_size"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		LogLevel:    "info",
		LogDir:      "logs",
		Prompt:      "> ",
		HistorySize: 200,
	}
}

// LoadFile merges a YAML file over the current values. A missing file is not
// an error; fields absent from the file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}

	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() {
	if input := os.Getenv("TASKTRACKER_INPUT"); input != "" {
		c.InputFile = input
	}

	if abort := os.Getenv("TASKTRACKER_ABORT_ON_ERROR"); abort != "" {
		if b, err := strconv.ParseBool(abort); err == nil {
			c.AbortOnError = b
		}
	}

	if echo := os.Getenv("TASKTRACKER_ECHO_COMMANDS"); echo != "" {
		if b, err := strconv.ParseBool(echo); err == nil {
			c.EchoCommands = b
		}
	}

	if level := os.Getenv("TASKTRACKER_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}

	if logDir := os.Getenv("TASKTRACKER_LOG_DIR"); logDir != "" {
		c.LogDir = logDir
	}

	if prompt := os.Getenv("TASKTRACKER_PROMPT"); prompt != "" {
		c.Prompt = prompt
	}

	if size := os.Getenv("TASKTRACKER_HISTORY_SIZE"); size != "" {
		if s, err := strconv.Atoi(size); err == nil {
			c.HistorySize = s
		}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}

	if c.LogDir == "" {
		return fmt.Errorf("log directory cannot be empty")
	}

	if c.HistorySize <= 0 {
		return fmt.Errorf("history size must be positive, got: %d", c.HistorySize)
	}

	return nil
}
