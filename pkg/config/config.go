package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config regroupe la configuration de l'application (lecture via Viper depuis env et optionnellement fichier).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	SMTP    SMTPConfig
	Payment PaymentConfig
	PDF     PDFConfig
}

// AppConfig configuration générale de l'application.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuration du serveur HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr retourne l'adresse d'écoute (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SMTPConfig configuration du transport email (envoi des factures en pièce jointe).
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string // adresse expéditeur, ex: facturation@exemple.fr
}

// PaymentConfig configuration des liens de paiement hébergés.
type PaymentConfig struct {
	BaseURL    string // URL publique de la page de paiement, ex: https://pay.exemple.fr
	ExpiryDays int    // validité du lien en jours
}

// PDFConfig configuration du rendu PDF.
type PDFConfig struct {
	Locale string // "fr" (conventions françaises) ou "default"
}

// Load lit la configuration depuis les variables d'environnement (et optionnellement un fichier).
// Les env vars sont prioritaires. Noms attendus : APP_ENV, HTTP_PORT, SMTP_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optionnel : fichier de configuration (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // erreur ignorée si absent

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // erreur ignorée si absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "facturio"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "localhost"),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", "facturation@localhost"),
		},
		Payment: PaymentConfig{
			BaseURL:    getString(v, "PAYMENT_BASE_URL", ""),
			ExpiryDays: getInt(v, "PAYMENT_EXPIRY_DAYS", 30),
		},
		PDF: PDFConfig{
			Locale: getString(v, "PDF_LOCALE", "fr"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
