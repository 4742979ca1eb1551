package redactor

import (
	"errors"
	"os"
	"sync"
)

// documentPart is the archive entry holding the main document body.
const documentPart = "word/document.xml"

// Config contains all configuration options for the redactor engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// DocumentPart is the archive entry to edit. Defaults to word/document.xml;
	// there is no support for other parts beyond pointing the engine at a
	// different entry path.
	DocumentPart string
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		DocumentPart: documentPart,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCXREDACTOR_LOG_LEVEL
	if val := os.Getenv("DOCXREDACTOR_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DOCXREDACTOR_DOCUMENT_PART
	if val := os.Getenv("DOCXREDACTOR_DOCUMENT_PART"); val != "" {
		config.DocumentPart = val
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.DocumentPart == "" {
		return errors.New("document part cannot be empty")
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}
