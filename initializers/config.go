package initializers

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	defaultAPIBaseURL    = "http://localhost:8080/api"
	defaultRedirectDelay = 2 * time.Second
	defaultLoginTarget   = "/login"
)

type Config struct {
	APIBaseURL    string
	SessionDir    string
	RedirectDelay time.Duration
	LoginTarget   string
}

func LoadConfig() Config {
	cfg := Config{
		APIBaseURL:    defaultAPIBaseURL,
		RedirectDelay: defaultRedirectDelay,
		LoginTarget:   defaultLoginTarget,
	}

	if v := os.Getenv("QUICKKART_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("QUICKKART_SESSION_DIR"); v != "" {
		cfg.SessionDir = v
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.SessionDir = filepath.Join(home, ".quickkart")
	}
	if v := os.Getenv("QUICKKART_REDIRECT_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.RedirectDelay = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("QUICKKART_LOGIN_TARGET"); v != "" {
		cfg.LoginTarget = v
	}
	return cfg
}
