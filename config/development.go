package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Fixed keys so that cookies survive dev server restarts
var devSessionHashKey = []byte("accountsite-development-hash-key-0123456789abcdef0123456789abcde")
var devSessionBlockKey = []byte("accountsite-dev-block-key-32byte")

func developmentConfig() Config {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	port := defaultPort
	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			panic(fmt.Errorf("couldn't parse PORT: %w", err))
		}
	}

	return Config{
		Env:                EnvDevelopment,
		Port:               port,
		SessionHashKey:     devSessionHashKey,
		SessionBlockKey:    devSessionBlockKey,
		SessionInitTimeout: defaultSessionInitTimeout,
		CompressLevel:      defaultCompressLevel,
	}
}
