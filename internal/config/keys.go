package config

import (
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService  = "RizzTheGrid"
	keyringDescribe = "describe_key"

	// EnvDescribeKey overrides the keyring, for headless setups.
	EnvDescribeKey = "RTG_DESCRIBE_KEY"
)

// DescribeKey returns the describe-service API key. The environment
// variable wins over the OS keyring; empty means not configured.
func DescribeKey() string {
	if v := strings.TrimSpace(os.Getenv(EnvDescribeKey)); v != "" {
		return v
	}
	if v, err := keyring.Get(keyringService, keyringDescribe); err == nil {
		return v
	}
	return ""
}

// SetDescribeKey stores the API key in the OS keyring.
func SetDescribeKey(key string) error {
	return keyring.Set(keyringService, keyringDescribe, key)
}

// ClearDescribeKey removes the API key from the OS keyring.
func ClearDescribeKey() error {
	return keyring.Delete(keyringService, keyringDescribe)
}
