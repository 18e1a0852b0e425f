package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Notify   NotifyConfig
	Payment  PaymentConfig
	Upload   UploadConfig
	ML       MLConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	NoticeCacheTTLS int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
	DefaultAdminID        string
	DefaultAdminPassword  string
}

// NotifyConfig configures out-of-band OTP/SMS delivery.
type NotifyConfig struct {
	AMQPURL          string
	SMSQueue         string
	SenderNumber     string
	OTPTTLMinutes    int
	WhatsAppSender   string
	DeliveryRequired bool
}

// PaymentConfig holds payment-gateway credentials.
type PaymentConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Currency  string
}

// UploadConfig bounds the image-upload endpoint.
type UploadConfig struct {
	Dir          string
	PublicPath   string
	MaxSizeBytes int64
}

// MLConfig points at the maintenance-forecast service.
type MLConfig struct {
	ForecastURL    string
	TimeoutSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "society-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:            getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:        os.Getenv("REDIS_PASSWORD"),
			DB:              redisDB,
			NoticeCacheTTLS: getEnvAsInt("NOTICE_CACHE_TTL_SECONDS", 60),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
			DefaultAdminID:        getEnv("DEFAULT_ADMIN_ID", "admin"),
			DefaultAdminPassword:  getEnv("DEFAULT_ADMIN_PASSWORD", "Admin@123"),
		},
		Notify: NotifyConfig{
			AMQPURL:          os.Getenv("NOTIFY_AMQP_URL"),
			SMSQueue:         getEnv("NOTIFY_SMS_QUEUE", "notify.sms"),
			SenderNumber:     os.Getenv("NOTIFY_SENDER_NUMBER"),
			WhatsAppSender:   os.Getenv("NOTIFY_WHATSAPP_SENDER"),
			OTPTTLMinutes:    getEnvAsInt("TICKET_OTP_TTL_MINUTES", 10),
			DeliveryRequired: getEnvAsBool("NOTIFY_DELIVERY_REQUIRED", true),
		},
		Payment: PaymentConfig{
			BaseURL:   getEnv("PAYMENT_BASE_URL", "https://api.razorpay.com/v1"),
			KeyID:     os.Getenv("PAYMENT_KEY_ID"),
			KeySecret: os.Getenv("PAYMENT_KEY_SECRET"),
			Currency:  getEnv("PAYMENT_CURRENCY", "INR"),
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "public/uploads"),
			PublicPath:   getEnv("UPLOAD_PUBLIC_PATH", "/uploads"),
			MaxSizeBytes: int64(getEnvAsInt("UPLOAD_MAX_SIZE_BYTES", 5*1024*1024)),
		},
		ML: MLConfig{
			ForecastURL:    getEnv("ML_FORECAST_URL", "http://127.0.0.1:5000/predict"),
			TimeoutSeconds: getEnvAsInt("ML_TIMEOUT_SECONDS", 10),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// NoticeCacheTTL returns the board-cache expiry duration.
func (r RedisConfig) NoticeCacheTTL() time.Duration {
	if r.NoticeCacheTTLS <= 0 {
		return 0
	}
	return time.Duration(r.NoticeCacheTTLS) * time.Second
}

// OTPTTL returns the closure-code validity window.
func (n NotifyConfig) OTPTTL() time.Duration {
	if n.OTPTTLMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(n.OTPTTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
