package config

import (
	"fmt"
	"strings"
	"time"

	"atlas-hotel/internal/pkg/password"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (mail, stripe, nats) stay disabled while their key is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Admin   AdminConfig
	Mail    MailConfig
	Stripe  StripeConfig
	Bus     BusConfig
	Pricing PricingConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" default:"8080"`
	SiteURL string `envconfig:"SITE_URL" default:"http://localhost:3000"`
	// Zone in which admin date filters are read
	TimeZone string `envconfig:"HOTEL_TIMEZONE" default:"Europe/Paris"`
}

// Location falls back to UTC when the zone database does not know TimeZone.
func (s ServerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"file"`
	Path   string `envconfig:"STORE_PATH" default:"data/hotel-db.json"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"atlas"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"atlas_hotel"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Admin-Token,Stripe-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type AdminConfig struct {
	// Shared token accepted in X-Admin-Token or ?token=
	DashboardToken string `envconfig:"ADMIN_DASHBOARD_TOKEN"`
	// bcrypt hash checked by POST /api/admin/login
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
}

// Open reports whether no admin credential is configured at all.
func (a AdminConfig) Open() bool {
	return a.DashboardToken == "" && a.PasswordHash == ""
}

type MailConfig struct {
	ResendAPIKey        string `envconfig:"RESEND_API_KEY"`
	From                string `envconfig:"RESEND_FROM"`
	BookingRecipient    string `envconfig:"BOOKING_RECIPIENT_EMAIL"`
	ContactRecipient    string `envconfig:"CONTACT_RECIPIENT_EMAIL"`
	NewsletterRecipient string `envconfig:"NEWSLETTER_RECIPIENT_EMAIL"`
}

func (m MailConfig) recipientOr(v string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return m.From
}

func (m MailConfig) BookingTo() string    { return m.recipientOr(m.BookingRecipient) }
func (m MailConfig) ContactTo() string    { return m.recipientOr(m.ContactRecipient) }
func (m MailConfig) NewsletterTo() string { return m.recipientOr(m.NewsletterRecipient) }

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	Currency      string `envconfig:"STRIPE_CURRENCY" default:"eur"`
}

type BusConfig struct {
	NATSURL       string `envconfig:"NATS_URL"`
	SubjectPrefix string `envconfig:"NATS_SUBJECT_PREFIX" default:"hotel"`
}

type PricingConfig struct {
	TariffFile string `envconfig:"TARIFF_FILE"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverPostgres:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Admin.PasswordHash != "" {
		if c.JWT.Secret == "" {
			return fmt.Errorf("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
		}
		if err := password.ValidateHash(c.Admin.PasswordHash); err != nil {
			return fmt.Errorf("ADMIN_PASSWORD_HASH: %w", err)
		}
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			SiteURL:  "http://localhost:3000",
			TimeZone: "UTC",
		},
		Store: StoreConfig{
			Driver: StoreDriverFile,
			Path:   "testdata/hotel-db.json",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Paris",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			DashboardToken: "test-admin-token",
		},
		Stripe: StripeConfig{
			Currency: "eur",
		},
		Bus: BusConfig{
			SubjectPrefix: "hotel",
		},
	}
}
