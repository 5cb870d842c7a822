package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/bright-coral-crab/tooldeck/internal/api/respond"
	"github.com/bright-coral-crab/tooldeck/internal/metrics"
	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/storage"
)

// The demo deployment ships a single credential pair. The hash is
// computed at startup so the plaintext never sits in a comparison path.
const (
	demoUsername = "admin"
	demoPassword = "admin123"
)

// Handler handles the login endpoint.
type Handler struct {
	jwt          *JWTService
	kv           storage.KV
	passwordHash []byte
}

// NewHandler creates a new auth handler.
func NewHandler(jwtService *JWTService, kv storage.KV) (*Handler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Handler{jwt: jwtService, kv: kv, passwordHash: hash}, nil
}

// LoginRequest is the request body for logging in. Role selects the
// acting role for the session and defaults to admin, mirroring the
// demo role switcher of the admin interface.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login verifies the demo credential pair and issues an access token
// carrying the selected role.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSONError(w, respond.NewBadRequest("invalid request body"))
		return
	}

	role := models.RoleAdmin
	if req.Role != "" {
		role = models.ParseRole(req.Role)
		if !role.Valid() {
			respond.JSONError(w, respond.NewBadRequest("role must be one of: admin, editor, viewer"))
			return
		}
	}

	if req.Username != demoUsername ||
		bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		respond.JSONError(w, respond.ErrUnauthorized)
		return
	}

	token, err := h.jwt.GenerateToken(req.Username, role)
	if err != nil {
		log.Printf("login error: generate token: %v", err)
		respond.JSONError(w, respond.ErrInternalServer)
		return
	}

	// Remember the last selected role for the login surface. The core
	// never reads this key; the role always travels in the token.
	if err := h.kv.Set(r.Context(), storage.KeyRole, []byte(role)); err != nil {
		log.Printf("login warning: persist role: %v", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	log.Printf("login: %s as %s", req.Username, role)

	respond.OK(w, respond.LoginResponse{
		AccessToken: token,
		ExpiresIn:   h.jwt.TTLSeconds(),
		TokenType:   "Bearer",
		Role:        string(role),
	})
}
