package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	App      *App
	Database *Database
	HTTP     *HTTP
	Gateway  *Gateway
	Links    *Links
	Auth     *Auth
	SMS      *SMS
	SMTP     *SMTP
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Gateway struct {
	BaseURL      string `env:"CASHFREE_URL" envDefault:"https://sandbox.cashfree.com/pg/orders"`
	ClientID     string `env:"CASHFREE_APP_ID"`
	ClientSecret string `env:"CASHFREE_SECRET_KEY"`
}

// Links are the public endpoints handed to the payment gateway and
// the frontend destinations used at redirect time.
type Links struct {
	ReturnURLBase string `env:"PAYMENT_RETURN_URL" envDefault:"http://localhost:8080/api/payment-redirect"`
	NotifyURL     string `env:"PAYMENT_NOTIFY_URL" envDefault:"http://localhost:8080/api/payment-webhook"`
	FeedbackURL   string `env:"FRONTEND_FEEDBACK_URL" envDefault:"http://localhost:3000/feedback"`
	OrderingURL   string `env:"FRONTEND_ORDERING_URL" envDefault:"http://localhost:3000/food-ordering"`
	ResetURL      string `env:"FRONTEND_RESET_URL" envDefault:"http://localhost:3000/reset-password"`
}

// Auth carries the privileged-identity set, configured externally
// and resolved once at startup.
type Auth struct {
	Admins []string `env:"ADMIN_USERS" envSeparator:","`
}

type SMS struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	From       string `env:"TWILIO_PHONE_NUMBER"`
	BaseURL    string `env:"TWILIO_API_URL" envDefault:"https://api.twilio.com"`
}

type SMTP struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     string `env:"SMTP_PORT" envDefault:"587"`
	From     string `env:"SENDER_EMAIL"`
	Password string `env:"SENDER_PASSWORD"`
}

func NewConfig() (*Config, error) {
	var app App
	var db Database
	var http HTTP
	var gateway Gateway
	var links Links
	var auth Auth
	var sms SMS
	var smtp SMTP

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	for _, target := range []any{&app, &db, &http, &gateway, &links, &auth, &sms, &smtp} {
		if err := env.Parse(target); err != nil {
			return nil, fmt.Errorf("error parsing env config: %w", err)
		}
	}

	config := Config{
		App:      &app,
		Database: &db,
		HTTP:     &http,
		Gateway:  &gateway,
		Links:    &links,
		Auth:     &auth,
		SMS:      &sms,
		SMTP:     &smtp,
	}

	return &config, nil
}
