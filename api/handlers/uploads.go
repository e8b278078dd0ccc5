package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brentis/investigator-api/config"
)

// UploadHandler handles evidence attachment upload signing
type UploadHandler struct{}

// GenerateSignature signs a direct-to-CDN evidence upload. The signed params
// carry the owning case (and optionally the evidence item) as upload context,
// so an asset cannot be attached under a different case than the one the
// signature was issued for.
func (u UploadHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	var form uploadSignatureForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := form.Validate(); err != nil {
		config.ErrorStatus("invalid signature request", http.StatusBadRequest, w, err)
		return
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	uploadContext := "case_id=" + form.CaseID
	if form.EvidenceID != "" {
		uploadContext += "|evidence_id=" + form.EvidenceID
	}

	// params are signed in alphabetical order, the order the CDN verifies
	h := hmac.New(sha1.New, []byte(apiSecret))
	h.Write([]byte("context=" + uploadContext + "&timestamp=" + timestamp + "&upload_preset=" + uploadPreset))
	signature := hex.EncodeToString(h.Sum(nil))

	response := map[string]string{
		"timestamp": timestamp,
		"context":   uploadContext,
		"signature": signature,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
