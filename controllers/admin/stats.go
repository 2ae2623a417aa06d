package adminControllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/models"
)

// GET /admin/stats
//
// Dashboard aggregates: user/order counts, revenue over non-cancelled
// orders, five most recent orders.
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalUsers, totalOrders int64
		if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			slog.Error("failed to count users", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			slog.Error("failed to count orders", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
			return
		}

		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total), 0)").
			Scan(&totalRevenue).Error; err != nil {
			slog.Error("failed to sum revenue", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
			return
		}

		var recentOrders []models.Order
		if err := db.Preload("Items").
			Order("created_at DESC").
			Limit(5).
			Find(&recentOrders).Error; err != nil {
			slog.Error("failed to fetch recent orders", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"totalUsers":   totalUsers,
			"totalOrders":  totalOrders,
			"totalRevenue": totalRevenue,
			"recentOrders": recentOrders,
		})
	}
}
