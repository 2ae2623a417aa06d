package productControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/models"
)

// withImages preloads image references in display order.
func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	})
}

// GET /tablets
func GetTablets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tablets []models.Product
		if err := withImages(db).Find(&tablets).Error; err != nil {
			slog.Error("failed to fetch tablets", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tablets"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "tablets": tablets})
	}
}

// GET /tablets/:id
func GetTabletByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid tablet ID"})
			return
		}

		var tablet models.Product
		if err := withImages(db).First(&tablet, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tablet not found"})
				return
			}
			slog.Error("failed to fetch tablet", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tablet"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "tablet": tablet})
	}
}

// GET /tablets/bestsellers
func GetBestsellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bestsellers []models.Product
		if err := withImages(db).Where("bestseller = ?", true).Find(&bestsellers).Error; err != nil {
			slog.Error("failed to fetch bestsellers", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bestsellers"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "bestsellers": bestsellers})
	}
}

// GET /tablets/category/:category
func GetTabletsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")

		var tablets []models.Product
		if err := withImages(db).Where("category = ?", category).Find(&tablets).Error; err != nil {
			slog.Error("failed to fetch tablets by category", "category", category, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tablets by category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "tablets": tablets, "count": len(tablets)})
	}
}
