package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Export issues short-lived signed tokens for registry download links, so the
// browser can fetch an export without carrying the bearer token in the URL.
type Export struct {
	JWTSecret string
}

type exportTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// ExportTokenHandler mints a signed export token valid for 15 minutes
func (e Export) ExportTokenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if e.JWTSecret == "" {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "server misconfigured"})
		return
	}

	expiresAt := time.Now().Add(15 * time.Minute)
	claims := jwt.MapClaims{
		"scope": "export",
		"typ":   "access",
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(e.JWTSecret))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token generation failed"})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(exportTokenResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Unix(),
	})
}
