// Package config loads typed configuration structs from environment
// variables (and an optional .env file) with per-type caching, so the store
// backends and any surrounding service share a single parsed view of the
// environment.
//
// # Usage
//
//	var pg pgstore.Config
//	config.MustLoad(&pg)
//
// Parsing is delegated to github.com/caarlos0/env; .env loading to
// github.com/joho/godotenv.
package config
