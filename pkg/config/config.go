package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig
	Goals    GoalsConfig
	Tracker  TrackerConfig
	Server   ServerConfig
}

type DatabaseConfig struct {
	Path string
}

type GoalsConfig struct {
	Daily   int `yaml:"daily"`
	Weekly  int `yaml:"weekly"`
	Monthly int `yaml:"monthly"`
}

type TrackerConfig struct {
	SearchPaths    []string `yaml:"search_paths"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type ServerConfig struct {
	Port string
}

// settingsFile mirrors the optional YAML settings file layout
type settingsFile struct {
	Goals   GoalsConfig   `yaml:"goals"`
	Tracker TrackerConfig `yaml:"tracker"`
}

var AppConfig *Config

// Load loads configuration from .env file, environment variables and
// the optional YAML settings file
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Database: DatabaseConfig{
			Path: getEnv("BIGFOOT_DB_PATH", defaultDatabasePath()),
		},
		Goals: GoalsConfig{
			Daily:   getEnvAsInt("BIGFOOT_DAILY_GOAL", 5),
			Weekly:  getEnvAsInt("BIGFOOT_WEEKLY_GOAL", 35),
			Monthly: getEnvAsInt("BIGFOOT_MONTHLY_GOAL", 100),
		},
		Tracker: TrackerConfig{
			SearchPaths:    defaultSearchPaths(),
			TimeoutSeconds: getEnvAsInt("BIGFOOT_GIT_TIMEOUT", 30),
		},
		Server: ServerConfig{
			Port: getEnv("BIGFOOT_PORT", "8377"),
		},
	}

	if paths := getEnv("BIGFOOT_SEARCH_PATHS", ""); paths != "" {
		AppConfig.Tracker.SearchPaths = splitPaths(paths)
	}

	return loadSettingsFile(settingsFilePath())
}

// loadSettingsFile overlays goals and tracker settings from a YAML file.
// A missing file is not an error.
func loadSettingsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var settings settingsFile
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return err
	}

	if settings.Goals.Daily > 0 {
		AppConfig.Goals.Daily = settings.Goals.Daily
	}
	if settings.Goals.Weekly > 0 {
		AppConfig.Goals.Weekly = settings.Goals.Weekly
	}
	if settings.Goals.Monthly > 0 {
		AppConfig.Goals.Monthly = settings.Goals.Monthly
	}
	if len(settings.Tracker.SearchPaths) > 0 {
		AppConfig.Tracker.SearchPaths = settings.Tracker.SearchPaths
	}
	if settings.Tracker.TimeoutSeconds > 0 {
		AppConfig.Tracker.TimeoutSeconds = settings.Tracker.TimeoutSeconds
	}

	return nil
}

// settingsFilePath returns the YAML settings file location
func settingsFilePath() string {
	if path := os.Getenv("BIGFOOT_CONFIG_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".bigfoot", "config.yaml")
}

// defaultDatabasePath returns the default sqlite file location
func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./bigfoot.db"
	}
	return filepath.Join(home, ".bigfoot", "bigfoot.db")
}

// defaultSearchPaths returns the directories scanned for git repositories
func defaultSearchPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return []string{"."}
	}
	return []string{
		filepath.Join(home, "dev"),
		filepath.Join(home, "projects"),
		filepath.Join(home, "code"),
		filepath.Join(home, "workspace"),
	}
}

// splitPaths splits a comma-separated path list, dropping empty entries
func splitPaths(value string) []string {
	var paths []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	return paths
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
