package models

// Config holds all configuration for the service
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Gateway  SMSGatewayConfig
	Auth     AuthConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address       string
	SecurityTopic string
	SessionTopic  string
}

// SMSGatewayConfig holds configuration for the external OTP delivery provider
type SMSGatewayConfig struct {
	BaseURL      string
	APIKey       string
	WidgetSecret string
	Timeout      int // seconds
}

// AuthConfig holds authentication policy configuration
type AuthConfig struct {
	SessionTTL         int  // hours
	OTPExpiry          int  // seconds
	ResendCooldown     int  // seconds
	ValidationTokenTTL int  // seconds
	MandatoryMFA       bool // when true, no admin can authenticate without an enrolled TOTP secret
	TOTPIssuer         string
	CookieName         string
	CookieSecure       bool
	LoginLimit         int
	LoginWindow        int // seconds
	OTPSendLimit       int
	OTPSendWindow      int // seconds
	OTPVerifyLimit     int
	OTPVerifyWindow    int // seconds
	MFAConfirmLimit    int
	MFAConfirmWindow   int // seconds
	SessionSweep       int // seconds between expired-session sweeps
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
