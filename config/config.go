// Package config supplies the node options consumed by the contract
// subsystem, most importantly the master private key used by privileged
// issuers. Validating nodes run without one.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"gopkg.in/yaml.v3"
)

// Options are the contract-subsystem startup options.
type Options struct {
	// MasterKey is the master private key in hex or WIF form. Leave empty on
	// validating nodes; signing operations that need it fail with an error.
	MasterKey string `yaml:"master_key"`

	// ReplayRetentionSeconds overrides the replay pool retention window.
	ReplayRetentionSeconds int64 `yaml:"replay_retention_seconds"`

	Testnet bool   `yaml:"testnet"`
	DataDir string `yaml:"data_dir"`
	Debug   bool   `yaml:"debug"`
}

// Default returns the options used when no configuration file is given.
func Default() Options {
	return Options{}
}

// Load reads options from a YAML file, filling unset fields with defaults.
func Load(path string) (Options, error) {
	opts := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	return opts, nil
}

// ReplayRetention returns the configured replay retention window, zero when
// unset (callers fall back to the dispatch default).
func (o Options) ReplayRetention() time.Duration {
	if o.ReplayRetentionSeconds <= 0 {
		return 0
	}

	return time.Duration(o.ReplayRetentionSeconds) * time.Second
}

// MasterPrivateKey parses the configured master key. It fails when the key is
// missing or malformed rather than letting callers sign with unusable key
// material.
func (o Options) MasterPrivateKey() (*keys.PrivateKey, error) {
	if o.MasterKey == "" {
		return nil, errors.New("config: master key is not set")
	}

	if priv, err := keys.NewPrivateKeyFromHex(o.MasterKey); err == nil {
		return priv, nil
	}

	priv, err := keys.NewPrivateKeyFromWIF(o.MasterKey)
	if err != nil {
		return nil, fmt.Errorf("config: master key is neither hex nor WIF: %w", err)
	}

	return priv, nil
}
