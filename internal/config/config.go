package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds the API process settings.
type Server struct {
	Addr     string `envconfig:"ADDR" default:":8080"`
	Env      string `envconfig:"ENV" default:"development"`
	APIURL   string `envconfig:"EXTERNAL_URL" default:"localhost:8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"https://*,http://*"`

	DB   DB
	Auth Auth
}

type DB struct {
	Driver       string `envconfig:"DB_DRIVER" default:"sqlite"`
	Addr         string `envconfig:"DB_ADDR" default:"file:reviews.db?_pragma=busy_timeout(5000)"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"30"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"30"`
	MaxIdleTime  string `envconfig:"DB_MAX_IDLE_TIME" default:"15m"`
}

type Auth struct {
	// Secret has no fallback: a missing value stops the server at startup.
	Secret    string        `envconfig:"AUTH_TOKEN_SECRET" required:"true"`
	TokenExp  time.Duration `envconfig:"AUTH_TOKEN_EXP" default:"720h"`
	Issuer    string        `envconfig:"AUTH_TOKEN_ISS" default:"bazaar"`
	BasicUser string        `envconfig:"AUTH_BASIC_USER"`
	BasicPass string        `envconfig:"AUTH_BASIC_PASS"`
}

// Client holds the command-line client settings.
type Client struct {
	APIURL string `envconfig:"API_URL" default:"http://localhost:8080"`
	// PlacesAPIKey authenticates the place-search provider; required, no fallback.
	PlacesAPIKey   string `envconfig:"PLACES_API_KEY" required:"true"`
	PlacesModel    string `envconfig:"PLACES_MODEL" default:"gemini-2.5-flash"`
	PlacesEndpoint string `envconfig:"PLACES_ENDPOINT" default:"https://generativelanguage.googleapis.com/v1beta"`
	StorePath      string `envconfig:"CLIENT_DB" default:"bazaar-client.db"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadServer reads an optional .env file and then the environment.
func LoadServer() (Server, error) {
	var c Server
	if err := loadDotEnv(); err != nil {
		return c, err
	}
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	if err := notBlank("AUTH_TOKEN_SECRET", c.Auth.Secret); err != nil {
		return c, err
	}
	return c, nil
}

func LoadClient() (Client, error) {
	var c Client
	if err := loadDotEnv(); err != nil {
		return c, err
	}
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	if err := notBlank("PLACES_API_KEY", c.PlacesAPIKey); err != nil {
		return c, err
	}
	return c, nil
}

// notBlank rejects required keys that are set but empty, which envconfig accepts.
func notBlank(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("required key %s is blank", key)
	}
	return nil
}

// loadDotEnv never overrides variables that are already set.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// BasicAuthEnabled reports whether the operator endpoints have credentials configured.
func (a Auth) BasicAuthEnabled() bool {
	return a.BasicUser != "" && a.BasicPass != ""
}
