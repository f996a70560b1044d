package configs

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spf13/viper"

	"weather-relay/pkg/msg"
	"weather-relay/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault(env, "APPLICATION_NAME", "weather-relay"),
		PropertiesFilePath: env.GetString("PROPERTIES_FILE_PATH"),
		MessagesFilePath:   env.GetString("MESSAGES_FILE_PATH"),
	}
}

// Load installs application properties and the message catalog.
// Embedded defaults are used unless PROPERTIES_FILE_PATH or MESSAGES_FILE_PATH point elsewhere;
// an external message file is merged over the embedded catalog.
func Load() error {
	if Env.PropertiesFilePath != "" {
		if err := resource.LoadFile(Env.PropertiesFilePath); err != nil {
			return err
		}
	} else if err := resource.Load(bytes.NewReader(applicationYAML)); err != nil {
		return fmt.Errorf("fail to load embedded properties: %w", err)
	}

	if err := msg.Load(bytes.NewReader(messagesYAML)); err != nil {
		return fmt.Errorf("fail to load embedded messages: %w", err)
	}
	if Env.MessagesFilePath != "" {
		return msg.LoadFile(Env.MessagesFilePath)
	}
	return nil
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
