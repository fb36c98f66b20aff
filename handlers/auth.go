package handlers

import (
	"net/http"
	"time"

	"gobookhotel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tokenTTL = time.Hour

// AuthHandler issues and clears the session token cookie.
type AuthHandler struct {
	Logger *zap.Logger
}

func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Logger: logger}
}

// IssueTokenHandler signs the posted user object and sets it as the "token"
// cookie. Any well-formed JSON object is accepted; no field is validated.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var user map[string]interface{}
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	token, err := utils.GenerateToken(user, tokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	h.Logger.Debug("issuing token", zap.Any("user", user))
	// httpOnly, not secure: the frontend is served over plain HTTP in dev.
	c.SetCookie("token", token, int(tokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler clears the token cookie unconditionally. The token itself
// stays valid until natural expiry; there is no revocation list.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.Logger.Debug("logging out")
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
