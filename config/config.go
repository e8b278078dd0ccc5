package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/brentis/investigator-api/analytics"
)

// DefaultHourlyRate is the billing rate applied when HOURLY_RATE is unset.
const DefaultHourlyRate = analytics.DefaultHourlyRate

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	HourlyRate   float64
	JWTSecret    string
	SendgridKey  string
	DigestEmail  string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:          os.Getenv("DB_URI"),
		DatabaseName: os.Getenv("DB_NAME"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         os.Getenv("PORT"),
		HourlyRate:   hourlyRate(),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SendgridKey:  os.Getenv("SENDGRID_API_KEY"),
		DigestEmail:  os.Getenv("DIGEST_EMAIL"),
	}

}

func hourlyRate() float64 {
	raw := os.Getenv("HOURLY_RATE")
	if raw == "" {
		return DefaultHourlyRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 {
		zap.S().Warnw("invalid HOURLY_RATE, using default", "value", raw)
		return DefaultHourlyRate
	}
	return rate
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
	return
}
