package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/propline/adminauth/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "admin-auth")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9980)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.SecurityTopic = GetEnv("NSQ_SECURITY_TOPIC", "admin_auth.security")
	configs.NSQ.SessionTopic = GetEnv("NSQ_SESSION_TOPIC", "admin_auth.sessions")

	// SMS gateway config
	configs.Gateway.BaseURL = GetEnv("SMS_GATEWAY_URL", "")
	configs.Gateway.APIKey = GetEnv("SMS_GATEWAY_API_KEY", "")
	configs.Gateway.WidgetSecret = GetEnv("SMS_GATEWAY_WIDGET_SECRET", "")
	configs.Gateway.Timeout = GetEnvAsInt("SMS_GATEWAY_TIMEOUT", 30)

	// Auth policy config
	configs.Auth.SessionTTL = GetEnvAsInt("AUTH_SESSION_TTL_HOURS", 24)
	configs.Auth.OTPExpiry = GetEnvAsInt("AUTH_OTP_EXPIRY_SECONDS", 300)
	configs.Auth.ResendCooldown = GetEnvAsInt("AUTH_RESEND_COOLDOWN_SECONDS", 30)
	configs.Auth.ValidationTokenTTL = GetEnvAsInt("AUTH_VALIDATION_TOKEN_TTL_SECONDS", 300)
	configs.Auth.MandatoryMFA = GetEnvAsBool("AUTH_MANDATORY_MFA", true)
	configs.Auth.TOTPIssuer = GetEnv("AUTH_TOTP_ISSUER", "Propline Admin")
	configs.Auth.CookieName = GetEnv("AUTH_COOKIE_NAME", "admin_session")
	configs.Auth.CookieSecure = GetEnvAsBool("AUTH_COOKIE_SECURE", true)
	configs.Auth.LoginLimit = GetEnvAsInt("AUTH_LOGIN_LIMIT", 10)
	configs.Auth.LoginWindow = GetEnvAsInt("AUTH_LOGIN_WINDOW_SECONDS", 300)
	configs.Auth.OTPSendLimit = GetEnvAsInt("AUTH_OTP_SEND_LIMIT", 5)
	configs.Auth.OTPSendWindow = GetEnvAsInt("AUTH_OTP_SEND_WINDOW_SECONDS", 600)
	configs.Auth.OTPVerifyLimit = GetEnvAsInt("AUTH_OTP_VERIFY_LIMIT", 10)
	configs.Auth.OTPVerifyWindow = GetEnvAsInt("AUTH_OTP_VERIFY_WINDOW_SECONDS", 600)
	configs.Auth.MFAConfirmLimit = GetEnvAsInt("AUTH_MFA_CONFIRM_LIMIT", 10)
	configs.Auth.MFAConfirmWindow = GetEnvAsInt("AUTH_MFA_CONFIRM_WINDOW_SECONDS", 600)
	configs.Auth.SessionSweep = GetEnvAsInt("AUTH_SESSION_SWEEP_SECONDS", 3600)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
