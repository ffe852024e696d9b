package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// KeyVerifier checks the presented shared API key against the configured
// bcrypt hash.
type KeyVerifier interface {
	VerifyKey(presented string) bool
}

// TokenIssuer mints a signed session token after a successful key check.
type TokenIssuer interface {
	Issue() (string, error)
}

type AuthHandler struct {
	keys   KeyVerifier
	issuer TokenIssuer
}

func NewAuthHandler(keys KeyVerifier, issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{keys: keys, issuer: issuer}
}

type LoginRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// Login exchanges the shared API key for a time-limited JWT.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req, "api_key is required") {
		return
	}

	if !h.keys.VerifyKey(req.APIKey) {
		RespondUnauthorized(ctx, "Invalid API key")
		return
	}

	token, err := h.issuer.Issue()

	if err != nil {
		RespondInternal(ctx, "Could not issue token")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
