package common

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type H = map[string]interface{}

var (
	WebHttp     string // public address of this server
	FrontendURL string // base url embedded in reset-link emails
	Port        string
	AdminEmail  string
)

// Init loads the shared configuration. Secrets may be overridden via
// the environment (optionally from a .env file) so config.json can be
// committed without them.
func Init(cfg H) error {
	godotenv.Load() // .env is optional
	rand.Seed(time.Now().UnixNano())

	var ok bool
	WebHttp, ok = cfg["address"].(string)
	if !ok {
		return errors.New("missing server address in config")
	}
	FrontendURL, _ = cfg["frontend"].(string)
	if FrontendURL == "" {
		FrontendURL = WebHttp
	}
	Port, _ = cfg["port"].(string)
	if Port == "" {
		Port = ":9999"
	}

	admin, ok := cfg["admin"].(H)
	if !ok {
		return errors.New("missing admin config")
	}
	AdminEmail = EnvOr("ADMIN_EMAIL", str(admin["email"]))
	if AdminEmail == "" {
		return errors.New("missing admin email")
	}

	return initMail(cfg)
}

// IsAdminEmail is the single place that classifies a login attempt as
// admin or student. Middleware and the session manager both call it.
func IsAdminEmail(email string) bool {
	return email != "" && email == AdminEmail
}

func EnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}
