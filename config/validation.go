package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be positive, got %d", config.Database.MaxConnections)
	}
	if config.ImageProxy.MaxBytes < 1 {
		return fmt.Errorf("image proxy max bytes must be positive, got %d", config.ImageProxy.MaxBytes)
	}
	if config.ImageProxy.MaxRedirects < 0 {
		return fmt.Errorf("image proxy max redirects must not be negative, got %d", config.ImageProxy.MaxRedirects)
	}
	if config.ImageProxy.FetchTimeout <= 0 {
		return fmt.Errorf("image proxy fetch timeout must be positive, got %s", config.ImageProxy.FetchTimeout)
	}
	if config.Auth.ServiceURL == "" {
		return fmt.Errorf("auth service URL must not be empty")
	}
	return nil
}
