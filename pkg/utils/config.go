package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Token    TokenConfig
	Email    EmailConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	RateLimitPerMin int
	AllowedOrigins  []string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type TokenConfig struct {
	Secret      string
	ExpiryHours int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type PaymentConfig struct {
	BaseURL  string
	APIKey   string
	Currency string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_NAME", "doctors_portal")
	viper.SetDefault("TOKEN_EXPIRY_HOURS", 1)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 100)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("PAYMENT_CURRENCY", "usd")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			RateLimitPerMin: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			AllowedOrigins:  viper.GetStringSlice("ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			URI:  viper.GetString("MONGO_URI"),
			Name: viper.GetString("DB_NAME"),
		},
		Token: TokenConfig{
			Secret:      viper.GetString("ACCESS_TOKEN_SECRET"),
			ExpiryHours: viper.GetInt("TOKEN_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Payment: PaymentConfig{
			BaseURL:  viper.GetString("PAYMENT_BASE_URL"),
			APIKey:   viper.GetString("PAYMENT_API_KEY"),
			Currency: viper.GetString("PAYMENT_CURRENCY"),
		},
	}

	return config, nil
}
