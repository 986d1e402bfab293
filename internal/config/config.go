package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/branding"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/platform"
)

const (
	fileName = "config"
	fileType = "yaml"

	// DotEnvFile is read from the working directory before the environment is consulted.
	DotEnvFile = ".env"
)

// Dir returns the config directory: $WEBDEVENV_HOME when set, else ~/.webdevenv/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	if err := platform.EnsurePrivateDir(Dir()); err != nil {
		return fmt.Errorf("config directory: %w", err)
	}
	return nil
}

// Load initializes Viper with defaults, the config file and the environment.
// A missing .env or config file is not an error.
func Load() error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", DotEnvFile, err)
	}

	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	if isList(key) {
		return strings.Join(stringList(key), ",")
	}
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. List keys
// take a comma-separated value.
func Set(key, value string) error {
	key = strings.ToLower(key)
	if !IsKey(key) {
		return fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if isList(key) {
		viper.Set(key, splitList(value))
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return platform.Chmod(configFile, 0600)
}

// Keys returns every recognized key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a recognized setting.
func IsKey(key string) bool {
	_, ok := defaults[strings.ToLower(key)]
	return ok
}

func isList(key string) bool {
	_, ok := defaults[strings.ToLower(key)].([]string)
	return ok
}

func splitList(value string) []string {
	out := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
