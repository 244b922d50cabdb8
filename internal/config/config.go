package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Mail     MailConfig     `mapstructure:"mail"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// MailConfig holds notification email configuration
type MailConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Transport  string `mapstructure:"transport"` // smtp or gmail
	Sender     string `mapstructure:"sender"`
	AdminEmail string `mapstructure:"admin_email"`

	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`

	GmailClientID     string `mapstructure:"gmail_client_id"`
	GmailClientSecret string `mapstructure:"gmail_client_secret"`
	GmailRefreshToken string `mapstructure:"gmail_refresh_token"`
}

// LoadConfig loads configuration from environment variables and config file
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	viper.AutomaticEnv()
	bindEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.dbname", "streamline_labs")

	viper.SetDefault("mail.enabled", true)
	viper.SetDefault("mail.transport", "smtp")
	viper.SetDefault("mail.smtp_host", "smtp.gmail.com")
	viper.SetDefault("mail.smtp_port", 587)
	viper.SetDefault("mail.admin_email", "infostreamlinelabs@gmail.com")
}

// bindEnvVars binds environment variables to configuration keys
func bindEnvVars() {
	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Database
	viper.BindEnv("database.host", "DB_HOST")
	viper.BindEnv("database.port", "DB_PORT")
	viper.BindEnv("database.user", "DB_USER")
	viper.BindEnv("database.password", "DB_PASSWORD")
	viper.BindEnv("database.dbname", "DB_NAME")

	// Mail
	viper.BindEnv("mail.enabled", "MAIL_ENABLED")
	viper.BindEnv("mail.transport", "MAIL_TRANSPORT")
	viper.BindEnv("mail.sender", "MAIL_SENDER")
	viper.BindEnv("mail.admin_email", "ADMIN_EMAIL")
	viper.BindEnv("mail.smtp_host", "MAIL_SMTP_HOST")
	viper.BindEnv("mail.smtp_port", "MAIL_SMTP_PORT")
	viper.BindEnv("mail.smtp_username", "MAIL_USERNAME")
	viper.BindEnv("mail.smtp_password", "MAIL_PASSWORD")
	viper.BindEnv("mail.gmail_client_id", "GMAIL_CLIENT_ID")
	viper.BindEnv("mail.gmail_client_secret", "GMAIL_CLIENT_SECRET")
	viper.BindEnv("mail.gmail_refresh_token", "GMAIL_REFRESH_TOKEN")
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host, user, and dbname are required")
	}

	if c.Mail.Enabled {
		if c.Mail.AdminEmail == "" {
			return fmt.Errorf("admin email is required when mail is enabled")
		}
		switch c.Mail.Transport {
		case "smtp":
			if c.Mail.SMTPHost == "" || c.Mail.SMTPUsername == "" || c.Mail.SMTPPassword == "" {
				return fmt.Errorf("SMTP host and credentials are required when using the smtp transport")
			}
		case "gmail":
			if c.Mail.GmailClientID == "" || c.Mail.GmailClientSecret == "" || c.Mail.GmailRefreshToken == "" {
				return fmt.Errorf("Gmail OAuth2 credentials are required when using the gmail transport")
			}
		default:
			return fmt.Errorf("unknown mail transport %q", c.Mail.Transport)
		}
	}

	return nil
}

// SenderAddress returns the From address for outgoing mail, falling back
// to the transport username when no explicit sender is configured.
func (c *MailConfig) SenderAddress() string {
	if c.Sender != "" {
		return c.Sender
	}
	return c.SMTPUsername
}
