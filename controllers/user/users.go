package userControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/config"
	"github.com/sizets/tabletstore-api/models"
)

type UpdateProfileInput struct {
	Name    string `json:"name" binding:"required,min=2"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type AdminUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// GET /me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// PUT /profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name must be at least 2 characters long"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		if err := db.Model(&user).Updates(map[string]interface{}{
			"name":    strings.TrimSpace(input.Name),
			"phone":   input.Phone,
			"address": input.Address,
		}).Error; err != nil {
			slog.Error("failed to update profile", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "user": user})
	}
}

// -------- Admin user management --------

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			slog.Error("failed to fetch users", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

// POST /admin/users
//
// The account is created with a default password the user is expected
// to change through the reset flow.
func CreateUser(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AdminUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name and email are required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		role := models.RoleUser
		if input.Role == string(models.RoleAdmin) {
			role = models.RoleAdmin
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("defaultPassword123"), cfg.BcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Name:     input.Name,
			Email:    email,
			Password: string(hashed),
			Role:     role,
			Phone:    input.Phone,
			Cart:     models.Cart{},
		}
		if err := db.Create(&user).Error; err != nil {
			slog.Error("failed to create user", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
	}
}

// PUT /admin/users/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		var input AdminUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name and email are required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))
		if email != user.Email {
			var existing models.User
			if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already in use"})
				return
			}
		}

		role := user.Role
		if input.Role != "" {
			role = models.Role(input.Role)
		}

		if err := db.Model(&user).Updates(map[string]interface{}{
			"name":  input.Name,
			"email": email,
			"role":  role,
			"phone": input.Phone,
		}).Error; err != nil {
			slog.Error("failed to update user", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// DELETE /admin/users/:id
//
// Deletion is refused while the user owns any order; order history
// outlives accounts only by keeping the account.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		var orderCount int64
		if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		if orderCount > 0 {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Cannot delete user with existing orders"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			slog.Error("failed to delete user", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
	}
}
