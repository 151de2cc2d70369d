// Package config loads typed configuration structs from environment
// variables.
//
// Struct fields are described with github.com/caarlos0/env tags. On first use
// the package reads a .env file from the working directory, if one exists,
// through github.com/joho/godotenv; real environment variables always win.
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Successful results are cached per struct type, so later calls return the
// same values without re-reading the environment. Failed loads are not
// cached. Reset clears the cache; tests that change the environment call it.
package config
