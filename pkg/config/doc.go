// Package config loads configuration structs from the environment and from
// YAML files.
//
// Load parses `env` struct tags (with envDefault fallbacks) after loading an
// optional .env file once per process. LoadFile decodes a YAML file over a
// default-filled struct for deployables driven by config files. MustLoad
// panics on failure for configuration the process cannot run without.
package config
