package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileOverrides(t *testing.T) {
	base := Config{
		Env:                EnvDevelopment,
		Port:               3000,
		SessionInitTimeout: 2 * time.Second,
		CompressLevel:      5,
	}

	type Test struct {
		Description string
		Yaml        string
		Expected    Config
	}
	tests := []Test{
		{
			Description: "empty file keeps everything",
			Yaml:        "",
			Expected:    base,
		},
		{
			Description: "port and timeout",
			Yaml:        "port: 8080\nsession_init_timeout: 500ms\n",
			Expected: Config{
				Env:                EnvDevelopment,
				Port:               8080,
				SessionInitTimeout: 500 * time.Millisecond,
				CompressLevel:      5,
			},
		},
		{
			Description: "compression",
			Yaml:        "compress_level: 9\n",
			Expected: Config{
				Env:                EnvDevelopment,
				Port:               3000,
				SessionInitTimeout: 2 * time.Second,
				CompressLevel:      9,
			},
		},
	}

	for _, tc := range tests {
		overrides, err := ParseFileOverrides([]byte(tc.Yaml))
		require.NoError(t, err, tc.Description)
		require.Equal(t, tc.Expected, overrides.Apply(base), tc.Description)
	}
}

func TestFileOverridesRejectsBadValues(t *testing.T) {
	_, err := ParseFileOverrides([]byte("session_init_timeout: soon\n"))
	require.Error(t, err)

	_, err = ParseFileOverrides([]byte("compress_level: 12\n"))
	require.Error(t, err)

	_, err = ParseFileOverrides([]byte("port: [1, 2]\n"))
	require.Error(t, err)
}

func TestEnvString(t *testing.T) {
	require.Equal(t, "production", EnvProduction.String())
	require.True(t, EnvTesting.IsDevOrTest())
	require.False(t, EnvProduction.IsDevOrTest())
}
