package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
)

func productionConfig() Config {
	port, err := strconv.Atoi(mustLookupEnv("PORT"))
	if err != nil {
		panic(err)
	}

	sessionHashKeyHex := mustLookupEnv("SESSION_HASH_KEY")
	sessionHashKey, err := hex.DecodeString(sessionHashKeyHex)
	if err != nil {
		panic(err)
	}

	sessionBlockKeyHex := mustLookupEnv("SESSION_BLOCK_KEY")
	sessionBlockKey, err := hex.DecodeString(sessionBlockKeyHex)
	if err != nil {
		panic(err)
	}

	return Config{
		Env:                EnvProduction,
		Port:               port,
		SessionHashKey:     sessionHashKey,
		SessionBlockKey:    sessionBlockKey,
		SessionInitTimeout: defaultSessionInitTimeout,
		CompressLevel:      defaultCompressLevel,
	}
}

func mustLookupEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		panic(fmt.Errorf("%s environment variable not set", key))
	}
	return value
}
