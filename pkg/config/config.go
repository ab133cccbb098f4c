package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Uploads      UploadsConfig
	Configurator ConfiguratorConfig
	PDF          PDFConfig
	ResetToken   ResetTokenConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env     string `envconfig:"VANARI_APP_ENV" required:"true"`
	Port    string `envconfig:"VANARI_APP_PORT" default:"8080"`
	BaseURL string `envconfig:"VANARI_APP_BASE_URL" default:"http://localhost:8080"`
	// FrontendURL is the origin serving the configurator and admin pages.
	// Share links, the PDF renderer, and reset emails all point there, not
	// at this API.
	FrontendURL  string `envconfig:"VANARI_APP_FRONTEND_URL" default:"http://localhost:3000"`
	LogLevel     string `envconfig:"VANARI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VANARI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VANARI_DB_DSN"`
	Driver string `envconfig:"VANARI_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"VANARI_DB_HOST"`
	Port     int    `envconfig:"VANARI_DB_PORT" default:"5432"`
	User     string `envconfig:"VANARI_DB_USER"`
	Password string `envconfig:"VANARI_DB_PASSWORD"`
	Name     string `envconfig:"VANARI_DB_NAME"`
	SSLMode  string `envconfig:"VANARI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VANARI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VANARI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VANARI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VANARI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VANARI_REDIS_URL"`
	Address      string        `envconfig:"VANARI_REDIS_ADDR"`
	Password     string        `envconfig:"VANARI_REDIS_PASSWORD"`
	DB           int           `envconfig:"VANARI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VANARI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VANARI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VANARI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VANARI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VANARI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"VANARI_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"VANARI_JWT_ISSUER" default:"vanari-auth"`
}

type UploadsConfig struct {
	Dir            string `envconfig:"VANARI_UPLOADS_DIR" default:"uploads"`
	MaxUploadMB    int    `envconfig:"VANARI_MAX_UPLOAD_MB" default:"20"`
	ImageMaxWidth  int    `envconfig:"VANARI_UPLOADS_IMAGE_MAX_WIDTH" default:"1920"`
	ImageMaxHeight int    `envconfig:"VANARI_UPLOADS_IMAGE_MAX_HEIGHT" default:"1080"`
	ThumbMaxSize   int    `envconfig:"VANARI_UPLOADS_THUMB_MAX_SIZE" default:"300"`
	JPEGQuality    int    `envconfig:"VANARI_UPLOADS_JPEG_QUALITY" default:"80"`
}

type ConfiguratorConfig struct {
	SessionTTL       time.Duration `envconfig:"VANARI_CONFIGURATOR_SESSION_TTL" default:"24h"`
	ShareConfigLimit int           `envconfig:"VANARI_SHARE_CONFIG_MAX_BYTES" default:"8192"`
}

type PDFConfig struct {
	ChromePath    string        `envconfig:"VANARI_CHROME_PATH"`
	RenderTimeout time.Duration `envconfig:"VANARI_PDF_RENDER_TIMEOUT" default:"30s"`
}

type ResetTokenConfig struct {
	TTL              time.Duration `envconfig:"VANARI_RESET_TOKEN_TTL" default:"1h"`
	ArgonMemoryKB    int           `envconfig:"VANARI_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int           `envconfig:"VANARI_ARGON_TIME" default:"3"`
	ArgonParallelism int           `envconfig:"VANARI_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int           `envconfig:"VANARI_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int           `envconfig:"VANARI_ARGON_KEY_LEN" default:"32"`
}

type RateLimitConfig struct {
	PasswordEmailWindow time.Duration `envconfig:"VANARI_RATE_LIMIT_PASSWORD_EMAIL_WINDOW" default:"5m"`
	PasswordEmailLimit  int           `envconfig:"VANARI_RATE_LIMIT_PASSWORD_EMAIL_LIMIT" default:"3"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VANARI_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		"VANARI_DB_HOST": db.Host,
		"VANARI_DB_USER": db.User,
		"VANARI_DB_NAME": db.Name,
	}
	for _, key := range []string{"VANARI_DB_HOST", "VANARI_DB_USER", "VANARI_DB_NAME"} {
		if parts[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either VANARI_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
