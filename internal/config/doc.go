// Package config manages user-level settings stored at ~/.webdevenv/config.yaml.
// Values resolve in the order flag, WEBDEVENV_* environment variable, .env
// file in the working directory, config file, built-in default.
package config
