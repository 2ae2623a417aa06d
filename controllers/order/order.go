package orderControllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/middleware"
	"github.com/sizets/tabletstore-api/models"
)

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// CancelOrder cancels an order owned by userID. Only pending orders
// may be cancelled; a second cancel of the same order fails.
func CancelOrder(db *gorm.DB, userID string, orderID string) error {
	var order models.Order
	if err := db.Where("(id::text = ? OR order_ref = ?) AND user_id = ?",
		orderID, orderID, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if order.Status != models.OrderStatusPending {
		return ErrNotPending
	}

	return db.Model(&order).Update("status", models.OrderStatusCancelled).Error
}

// UpdateStatus force-sets an order's status to any of the enumerated
// values. No transition graph is enforced; admin intent wins.
func UpdateStatus(db *gorm.DB, orderID string, status string) (models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}

	var order models.Order
	if err := db.Where("id::text = ? OR order_ref = ?", orderID, orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	if err := db.Model(&order).Update("status", models.OrderStatus(status)).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// -------- Handlers --------

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			slog.Error("failed to fetch orders", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("id")

		var order models.Order
		if err := db.
			Preload("Items").
			Where("(id::text = ? OR order_ref = ?) AND user_id = ?", orderID, orderID, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			slog.Error("failed to fetch order", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// DELETE /orders/:id
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("id")

		if err := CancelOrder(db, userID, orderID); err != nil {
			middleware.RecordOperation("order_cancel", false)
			switch {
			case errors.Is(err, ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			case errors.Is(err, ErrNotPending):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only pending orders can be cancelled"})
			default:
				slog.Error("failed to cancel order", "user_id", userID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to cancel order"})
			}
			return
		}

		middleware.RecordOperation("order_cancel", true)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order cancelled successfully"})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			slog.Error("failed to fetch all orders", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
			return
		}

		order, err := UpdateStatus(db, orderID, input.Status)
		if err != nil {
			middleware.RecordOperation("order_status_update", false)
			switch {
			case errors.Is(err, ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
			case errors.Is(err, ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			default:
				slog.Error("failed to update order status", "order_id", orderID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
			}
			return
		}

		middleware.RecordOperation("order_status_update", true)
		order.Status = models.OrderStatus(input.Status)
		broadcastOrderEvent("order_status_changed", order)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully", "order": order})
	}
}
