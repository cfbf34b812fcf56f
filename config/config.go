package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env                Env
	Port               int
	SessionHashKey     []byte
	SessionBlockKey    []byte
	SessionInitTimeout time.Duration
	CompressLevel      int
}

type Env int

const (
	EnvDevelopment Env = iota
	EnvTesting
	EnvProduction
)

func (e Env) IsDevOrTest() bool {
	return e == EnvDevelopment || e == EnvTesting
}

func (e Env) String() string {
	switch e {
	case EnvDevelopment:
		return "development"
	case EnvTesting:
		return "testing"
	case EnvProduction:
		return "production"
	default:
		return fmt.Sprintf("Env(%d)", int(e))
	}
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

const defaultPort = 3000
const defaultSessionInitTimeout = 2 * time.Second
const defaultCompressLevel = 5

var Cfg Config

func init() {
	if isTesting {
		Cfg = testingConfig()
		return
	}

	env, err := envFromName(os.LookupEnv("ACCOUNTSITE_ENV"))
	if err != nil {
		panic(err)
	}
	switch env {
	case EnvDevelopment:
		Cfg = developmentConfig()
	case EnvProduction:
		Cfg = productionConfig()
	}

	if path, ok := os.LookupEnv("ACCOUNTSITE_CONFIG"); ok {
		overrides, err := ReadFileOverrides(path)
		if err != nil {
			panic(err)
		}
		Cfg = overrides.Apply(Cfg)
	}
}

// envFromName reads ACCOUNTSITE_ENV. Unset means development, testing is only picked by the build tag.
func envFromName(name string, ok bool) (Env, error) {
	if !ok {
		return EnvDevelopment, nil
	}
	switch name {
	case "development":
		return EnvDevelopment, nil
	case "production":
		return EnvProduction, nil
	default:
		return EnvDevelopment, fmt.Errorf("unknown ACCOUNTSITE_ENV: %q", name)
	}
}
