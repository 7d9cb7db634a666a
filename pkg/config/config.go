package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP   HTTP
	Logger Logger
	Locale Locale
	Mock   Mock
	Auth   Auth
	Kafka  Kafka
	Mailer Mailer
	Jobs   Jobs
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Locale struct {
	Default string `env:"DEFAULT_LOCALE" envDefault:"ar"`
}

// Mock controls the simulated backend behind the in-memory content collections.
type Mock struct {
	Latency time.Duration `env:"MOCK_LATENCY" envDefault:"300ms"`
	Offline bool          `env:"MOCK_OFFLINE" envDefault:"false"`
}

type Auth struct {
	// JWTSecret enables signature checks on role tokens. Empty means claims are read unverified.
	JWTSecret string `env:"AUTH_JWT_SECRET"`
}

type Kafka struct {
	Brokers      []string `env:"KAFKA_BROKERS"`
	ConsumerID   string   `env:"KAFKA_CONSUMER_ID" envDefault:"portal"`
	InquiryTopic string   `env:"KAFKA_INQUIRY_TOPIC" envDefault:"portal.inquiries"`
	ChatTopic    string   `env:"KAFKA_CHAT_TOPIC" envDefault:"portal.chat"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Mailer struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM" envDefault:"no-reply@university.example"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"University Portal"`
	Inbox    string `env:"MAILER_INBOX" envDefault:"admissions@university.example"`
}

func (m Mailer) Enabled() bool {
	return m.Host != ""
}

type Jobs struct {
	OffersExpiryInterval time.Duration `env:"OFFERS_EXPIRY_INTERVAL" envDefault:"1h"`
	ChatRetention        time.Duration `env:"CHAT_RETENTION" envDefault:"24h"`
	ChatTrimInterval     time.Duration `env:"CHAT_TRIM_INTERVAL" envDefault:"10m"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if c.Locale.Default != "ar" && c.Locale.Default != "en" {
		return Config{}, fmt.Errorf("DEFAULT_LOCALE must be ar or en, got %q", c.Locale.Default)
	}

	if c.Mock.Latency < 0 {
		return Config{}, fmt.Errorf("MOCK_LATENCY must not be negative, got %s", c.Mock.Latency)
	}

	return c, nil
}
