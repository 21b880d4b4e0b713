// Package config provides configuration loading and validation for
// applications embedding recordkit.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with .env support via godotenv.
//
// # Usage
//
//	var cfg config.Config
//	err := config.LoadConfig("my-service", &cfg)
//	cfg.ApplyDefaults()
//	err = cfg.Validate()
package config
