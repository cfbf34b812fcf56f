package config

import (
	"os"
	"time"

	"accountsite/oops"

	"gopkg.in/yaml.v3"
)

// FileOverrides is the optional YAML file pointed to by ACCOUNTSITE_CONFIG. Secrets stay in
// the environment.
type FileOverrides struct {
	MaybePort               *int    `yaml:"port"`
	MaybeSessionInitTimeout *string `yaml:"session_init_timeout"`
	MaybeCompressLevel      *int    `yaml:"compress_level"`
}

func ReadFileOverrides(path string) (*FileOverrides, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Wrap(err)
	}

	return ParseFileOverrides(content)
}

func ParseFileOverrides(content []byte) (*FileOverrides, error) {
	var overrides FileOverrides
	if err := yaml.Unmarshal(content, &overrides); err != nil {
		return nil, oops.Wrapf(err, "YAML deserialization error")
	}
	if overrides.MaybeSessionInitTimeout != nil {
		if _, err := time.ParseDuration(*overrides.MaybeSessionInitTimeout); err != nil {
			return nil, oops.Wrapf(err, "session_init_timeout")
		}
	}
	if overrides.MaybeCompressLevel != nil &&
		(*overrides.MaybeCompressLevel < 1 || *overrides.MaybeCompressLevel > 9) {
		return nil, oops.Newf("compress_level out of range: %d", *overrides.MaybeCompressLevel)
	}
	return &overrides, nil
}

func (o *FileOverrides) Apply(cfg Config) Config {
	if o.MaybePort != nil {
		cfg.Port = *o.MaybePort
	}
	if o.MaybeSessionInitTimeout != nil {
		// Validated in ParseFileOverrides
		timeout, _ := time.ParseDuration(*o.MaybeSessionInitTimeout)
		cfg.SessionInitTimeout = timeout
	}
	if o.MaybeCompressLevel != nil {
		cfg.CompressLevel = *o.MaybeCompressLevel
	}
	return cfg
}
