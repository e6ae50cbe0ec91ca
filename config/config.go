package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DefaultLocale string
	Debug         bool

	// Mail transport settings, environment-only so credentials never
	// end up in shell history.
	EmailHost      string
	EmailPort      int
	EmailUser      string
	EmailPassword  string
	EmailFrom      string
	EmailFromName  string
	EmailRecipient string
}

// ParseFlags reads the command line and the environment (a local .env
// file is honored when present). Missing mail settings are a startup
// error: a survey that cannot deliver submissions must not come up.
func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 80, "listen port number (default 80)")
	flag.StringVar(&cfg.DefaultLocale, "locale", "en", "default page locale (default en)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))

	// best effort: no .env file is fine, the environment may already
	// carry the settings
	_ = godotenv.Load()

	cfg.EmailHost = os.Getenv("EMAIL_SERVER")
	cfg.EmailPort = 587
	if p := os.Getenv("EMAIL_PORT"); p != "" {
		cfg.EmailPort, err = strconv.Atoi(p)
		if err != nil {
			return cfg, errors.New("invalid EMAIL_PORT: " + p)
		}
	}
	cfg.EmailUser = os.Getenv("EMAIL_USER")
	cfg.EmailPassword = os.Getenv("EMAIL_PASSWORD")
	cfg.EmailFrom = os.Getenv("EMAIL_FROM")
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.EmailUser
	}
	cfg.EmailFromName = os.Getenv("EMAIL_FROM_NAME")
	cfg.EmailRecipient = os.Getenv("EMAIL_RECIPIENT")

	if cfg.EmailHost == "" {
		return cfg, errors.New("missing environment variable EMAIL_SERVER")
	}
	if cfg.EmailRecipient == "" {
		return cfg, errors.New("missing environment variable EMAIL_RECIPIENT")
	}

	return cfg, nil
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
