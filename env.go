package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env is configuration taken from the environment. It overrides the config
// file and is overridden by flags.
type Env struct {
	// Prefix replaces the configured command prefix when set.
	Prefix string `env:"MSGCMD_PREFIX"`
}

// loadEnv loads variables from the dotenv file, if it exists, without
// overriding variables already set, then parses [Env].
func loadEnv(file string) (*Env, error) {
	if file != "" {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("couldn't load env file: %w", err)
		}
	}
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("couldn't parse environment: %w", err)
	}
	return &e, nil
}
