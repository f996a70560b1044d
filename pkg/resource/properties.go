package resource

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// LoadFile reads application properties from a YAML file, replacing any previously loaded properties.
func LoadFile(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties from %s: %w", filepath, err)
	}
	install(v)
	return nil
}

// Load reads application properties in YAML format from r, replacing any previously loaded properties.
func Load(r io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}
	install(v)
	return nil
}

// install resolves ${ENV:default} placeholders and swaps the active property set
func install(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		if value, ok := v.Get(key).(string); ok {
			v.Set(key, resolveEnvVariable(value))
		}
	}

	mu.Lock()
	properties = v
	mu.Unlock()
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment variable NAME,
// falling back to default. Values without a placeholder are returned unchanged.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

// GetStringOrDefault returns the property value or defaultValue when the key is unset or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := current().GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

// GetDurationOrDefault returns the property value or defaultValue when the key is unset or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := current().GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetStringSlice(key string) []string {
	return current().GetStringSlice(key)
}

// IsSet reports whether the key was present in the loaded properties.
func IsSet(key string) bool {
	return current().IsSet(key)
}
