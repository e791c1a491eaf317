// Package config loads typed configuration structs from environment
// variables, optionally seeded from a .env file.
//
// Parsing is done by github.com/caarlos0/env/v11 and .env files are read with
// github.com/joho/godotenv. Each struct type is parsed once per process and
// cached, so packages can call Load for their own config type without
// coordinating.
package config
