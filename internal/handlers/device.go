package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DeviceHandler issues device tokens. The app has no accounts; each
// install registers once and keeps its token.
type DeviceHandler struct {
	secret []byte
	ttl    time.Duration
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(secret []byte, ttl time.Duration) *DeviceHandler {
	return &DeviceHandler{secret: secret, ttl: ttl}
}

type registerDeviceResponse struct {
	DeviceID string `json:"deviceId"`
	Token    string `json:"token"`
}

// RegisterDevice mints a fresh device identity and a signed token for it
func (h *DeviceHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id,
		"iat": now.Unix(),
		"exp": now.Add(h.ttl).Unix(),
	})
	signed, err := token.SignedString(h.secret)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, registerDeviceResponse{
		DeviceID: id,
		Token:    signed,
	})
}
