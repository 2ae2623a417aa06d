package productControllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/models"
)

// GET /tablets/search?query=&category=&minPrice=&maxPrice=
//
// Filters are ANDed: free-text match against name/description,
// optional category equality, optional price range.
func SearchTablets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := withImages(db.Model(&models.Product{}))

		if text := c.Query("query"); text != "" {
			likePattern := "%" + text + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		if minPriceStr := c.Query("minPrice"); minPriceStr != "" {
			minPrice, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid minPrice"})
				return
			}
			query = query.Where("price >= ?", minPrice)
		}

		if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
			maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid maxPrice"})
				return
			}
			query = query.Where("price <= ?", maxPrice)
		}

		var tablets []models.Product
		if err := query.Find(&tablets).Error; err != nil {
			slog.Error("tablet search failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to search tablets"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "tablets": tablets, "count": len(tablets)})
	}
}
