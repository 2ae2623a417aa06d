package authControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/config"
	"github.com/sizets/tabletstore-api/middleware"
	"github.com/sizets/tabletstore-api/models"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// IssueToken signs a bearer credential carrying the user identity and
// role.
func IssueToken(cfg *config.Config, userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Duration(cfg.TokenTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// POST /register
func Register(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User with this email already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), cfg.BcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Name:     strings.TrimSpace(input.Name),
			Email:    email,
			Password: string(hashed),
			Role:     models.RoleUser,
			Cart:     models.Cart{}, // empty cart exists from day one
		}
		if err := db.Create(&user).Error; err != nil {
			slog.Error("failed to create user", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully"})
	}
}

// POST /login
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}

		token, err := IssueToken(cfg, user.ID, user.Role)
		if err != nil {
			slog.Error("token generation failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		maxAge := cfg.TokenTTLHours * 3600
		c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "token": token})
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
	}
}

// POST /forgot-password
//
// Mail delivery is out of scope; the token is logged and returned so
// the reset flow stays exercisable end to end.
func ForgotPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ForgotPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			// Do not reveal whether the account exists.
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "If the account exists, a reset token has been issued"})
			return
		}

		token := uuid.NewString()
		expiry := time.Now().Add(time.Hour)
		if err := db.Model(&user).Updates(map[string]interface{}{
			"reset_token":        token,
			"reset_token_expiry": expiry,
		}).Error; err != nil {
			slog.Error("failed to store reset token", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		slog.Info("password reset token issued", "user_id", user.ID)
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "If the account exists, a reset token has been issued",
			"reset_token": token,
		})
	}
}

// POST /reset-password
func ResetPassword(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Token and new password are required"})
			return
		}

		var user models.User
		if err := db.Where("reset_token = ?", input.Token).First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired reset token"})
			return
		}
		if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired reset token"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), cfg.BcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		if err := db.Model(&user).Updates(map[string]interface{}{
			"password":           string(hashed),
			"reset_token":        nil,
			"reset_token_expiry": nil,
		}).Error; err != nil {
			slog.Error("failed to reset password", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
	}
}
