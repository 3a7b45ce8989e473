package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every application environment variable
const EnvPrefix = "RESTYLE"

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance from the default search paths
func New() (*Config, error) {
	return Load("")
}

// Load creates a new configuration instance.
// An empty path searches the default locations for config.yaml.
func Load(path string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/restyle/")
		v.AddConfigPath("$HOME/.restyle")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// bindEnv enables RESTYLE_* variables and the vendor-conventional names
func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string][]string{
		"resend.api_key":        {"RESTYLE_EMAIL_API_KEY", "RESTYLE_RESEND_API_KEY", "RESEND_API_KEY"},
		"email.from":            {"RESTYLE_EMAIL_FROM", "EMAIL_FROM"},
		"mailgun.api_key":       {"RESTYLE_MAILGUN_API_KEY", "MAILGUN_API_KEY"},
		"mailgun.domain":        {"RESTYLE_MAILGUN_DOMAIN", "MAILGUN_DOMAIN"},
		"smtp.password":         {"RESTYLE_SMTP_PASSWORD", "SMTP_PASSWORD"},
		"gemini.api_key":        {"RESTYLE_IMAGE_API_KEY", "RESTYLE_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"openai.api_key":        {"RESTYLE_OPENAI_API_KEY", "OPENAI_API_KEY"},
		"ses.access_key_id":     {"RESTYLE_SES_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"},
		"ses.secret_access_key": {"RESTYLE_SES_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	return nil
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Email defaults
	v.SetDefault("email.provider", "resend")
	v.SetDefault("email.from", "noreply@restyle.app")
	v.SetDefault("email.from_name", "Restyle")
	v.SetDefault("email.app_name", "Restyle")

	// Resend defaults
	v.SetDefault("resend.api_key", "")
	v.SetDefault("resend.base_url", "")

	// Mailgun defaults
	v.SetDefault("mailgun.api_key", "")
	v.SetDefault("mailgun.domain", "")
	v.SetDefault("mailgun.region", "us")

	// SES defaults
	v.SetDefault("ses.region", "us-east-1")
	v.SetDefault("ses.access_key_id", "")
	v.SetDefault("ses.secret_access_key", "")
	v.SetDefault("ses.configuration_set", "")

	// SMTP defaults
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.tls_mode", "starttls")

	// Image defaults
	v.SetDefault("image.provider", "gemini")
	v.SetDefault("image.max_style_length", 120)

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model_name", "gemini-2.5-flash-image")
	v.SetDefault("gemini.base_url", "")

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model_name", "gpt-image-1")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.size", "1024x1024")

	// Bedrock defaults
	v.SetDefault("bedrock.region", "us-east-1")
	v.SetDefault("bedrock.model_id", "amazon.titan-image-generator-v2:0")
	v.SetDefault("bedrock.similarity_strength", 0.7)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// Set overrides a configuration value
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
