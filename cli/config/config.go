package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeEnv overrides the config directory, mainly for tests and CI.
const HomeEnv = "TRANSLATEHUB_HOME"

type Config struct {
	Server struct {
		Host     string `yaml:"host"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"server"`
	Stats struct {
		Granularity string `yaml:"granularity"`
	} `yaml:"stats"`
	AWS struct {
		Region          string `yaml:"region"`
		UseProfile      bool   `yaml:"use_profile"`
		Profile         string `yaml:"profile"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
	} `yaml:"aws"`
	Logging struct {
		Level string `yaml:"level"`
		Path  string `yaml:"path"`
	} `yaml:"logging"`
}

var ErrNotInitialized = errors.New("configuration not initialized")

var GlobalConfig *Config

func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".translatehub"), nil
}

func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	GlobalConfig = &config
	return &config, nil
}

// Save writes the file owner-only since it may hold AWS keys.
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	GlobalConfig = config
	return nil
}

func Default(configDir string) *Config {
	config := &Config{}
	config.Server.Host = "localhost"
	config.Server.HTTPPort = 5001
	config.Stats.Granularity = "day"
	config.AWS.Region = "us-east-1"
	config.AWS.UseProfile = true
	config.AWS.Profile = "default"
	config.Logging.Level = "info"
	config.Logging.Path = filepath.Join(configDir, "logs")
	return config
}

func Init() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	config := Default(configDir)
	if err := os.MkdirAll(config.Logging.Path, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	return Save(config)
}

// SetCredentials stores either the profile choice or explicit keys, never both.
func SetCredentials(useProfile bool, accessKeyID, secretAccessKey string) error {
	config, err := Load()
	if err != nil {
		return err
	}

	config.AWS.UseProfile = useProfile
	if useProfile {
		config.AWS.AccessKeyID = ""
		config.AWS.SecretAccessKey = ""
	} else {
		config.AWS.AccessKeyID = accessKeyID
		config.AWS.SecretAccessKey = secretAccessKey
	}

	return Save(config)
}

func (c *Config) ServerURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.HTTPPort)
}

func GetServerURL() (string, error) {
	config, err := Load()
	if err != nil {
		return "", err
	}
	return config.ServerURL(), nil
}
