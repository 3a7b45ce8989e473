package config

// EmailConfig represents the email provider selection and sender identity
type EmailConfig struct {
	Provider string
	From     string
	FromName string
	AppName  string
}

// ResendConfig represents the configuration for Resend
type ResendConfig struct {
	APIKey  string
	BaseURL string
}

// MailgunConfig represents the configuration for Mailgun
type MailgunConfig struct {
	APIKey string
	Domain string
	Region string
}

// SESConfig represents the configuration for Amazon SES
type SESConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	ConfigurationSet string
}

// SMTPConfig represents the configuration for a plain SMTP relay
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	TLSMode  string
}

// ImageConfig represents the image provider selection
type ImageConfig struct {
	Provider       string
	MaxStyleLength int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey    string
	ModelName string
	BaseURL   string
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey    string
	ModelName string
	BaseURL   string
	Size      string
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region             string
	ModelID            string
	SimilarityStrength float64
}

// GetEmail returns the email configuration
func (c *Config) GetEmail() EmailConfig {
	return EmailConfig{
		Provider: c.GetString("email.provider"),
		From:     c.GetString("email.from"),
		FromName: c.GetString("email.from_name"),
		AppName:  c.GetString("email.app_name"),
	}
}

// GetResend returns the Resend configuration
func (c *Config) GetResend() ResendConfig {
	return ResendConfig{
		APIKey:  c.GetString("resend.api_key"),
		BaseURL: c.GetString("resend.base_url"),
	}
}

// GetMailgun returns the Mailgun configuration
func (c *Config) GetMailgun() MailgunConfig {
	return MailgunConfig{
		APIKey: c.GetString("mailgun.api_key"),
		Domain: c.GetString("mailgun.domain"),
		Region: c.GetString("mailgun.region"),
	}
}

// GetSES returns the SES configuration
func (c *Config) GetSES() SESConfig {
	return SESConfig{
		Region:           c.GetString("ses.region"),
		AccessKeyID:      c.GetString("ses.access_key_id"),
		SecretAccessKey:  c.GetString("ses.secret_access_key"),
		ConfigurationSet: c.GetString("ses.configuration_set"),
	}
}

// GetSMTP returns the SMTP configuration
func (c *Config) GetSMTP() SMTPConfig {
	return SMTPConfig{
		Host:     c.GetString("smtp.host"),
		Port:     c.GetInt("smtp.port"),
		Username: c.GetString("smtp.username"),
		Password: c.GetString("smtp.password"),
		TLSMode:  c.GetString("smtp.tls_mode"),
	}
}

// GetImage returns the image configuration
func (c *Config) GetImage() ImageConfig {
	return ImageConfig{
		Provider:       c.GetString("image.provider"),
		MaxStyleLength: c.GetInt("image.max_style_length"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:    c.GetString("gemini.api_key"),
		ModelName: c.GetString("gemini.model_name"),
		BaseURL:   c.GetString("gemini.base_url"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:    c.GetString("openai.api_key"),
		ModelName: c.GetString("openai.model_name"),
		BaseURL:   c.GetString("openai.base_url"),
		Size:      c.GetString("openai.size"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:             c.GetString("bedrock.region"),
		ModelID:            c.GetString("bedrock.model_id"),
		SimilarityStrength: c.GetFloat64("bedrock.similarity_strength"),
	}
}
