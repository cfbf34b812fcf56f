//go:build testing

package config

const isTesting = true

func testingConfig() Config {
	devCfg := developmentConfig()
	return Config{
		Env:                EnvTesting,
		Port:               devCfg.Port,
		SessionHashKey:     devCfg.SessionHashKey,
		SessionBlockKey:    devCfg.SessionBlockKey,
		SessionInitTimeout: devCfg.SessionInitTimeout,
		CompressLevel:      devCfg.CompressLevel,
	}
}
