package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkzaman/customer-backend-go/config"
	"github.com/mkzaman/customer-backend-go/utils"
)

type TokenRequest struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// IssueToken exchanges service client credentials for a Bearer token. The
// expected client id and the bcrypt hash of its secret come from the
// environment.
func IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	clientID := config.GetEnv("AUTH_CLIENT_ID", "")
	secretHash := config.GetEnv("AUTH_CLIENT_SECRET_HASH", "")
	if clientID == "" || secretHash == "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Token issuing is not configured"})
	}

	if req.ClientID != clientID {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid client credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(req.ClientSecret)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid client credentials"})
	}

	token, err := utils.GenerateJWT(req.ClientID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
