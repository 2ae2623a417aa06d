package orderControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/middleware"
	"github.com/sizets/tabletstore-api/models"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotPending     = errors.New("order is not pending")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrInvalidPayment = errors.New("invalid payment method")
	ErrBadAddress     = errors.New("incomplete shipping address")
)

type CheckoutInput struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
}

// generateOrderRef yields a unique, human-sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts the user's cart into a pending order. Line prices
// come from the snapshots captured at add time, not from a fresh
// catalog lookup. Order creation and cart clearing run in one
// transaction so a failure leaves neither half applied.
func Checkout(db *gorm.DB, userID string, addr models.ShippingAddress, method string, deliveryFee float64) (models.Order, error) {
	if !addr.Complete() {
		return models.Order{}, ErrBadAddress
	}
	if !models.ValidPaymentMethod(method) {
		return models.Order{}, ErrInvalidPayment
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrEmptyCart
		}
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	subtotal := cart.Subtotal()

	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID:    item.ProductID,
			Size:         item.Size,
			Quantity:     item.Quantity,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			ProductImage: item.ProductImage,
		})
	}

	order := models.Order{
		OrderRef:        generateOrderRef(),
		UserID:          userID,
		Items:           orderItems,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           subtotal + deliveryFee,
		ShippingAddress: addr,
		PaymentMethod:   models.PaymentMethod(method),
		Status:          models.OrderStatusPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// POST /checkout
func CheckoutHandler(db *gorm.DB, deliveryFee float64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Shipping address and payment method are required"})
			return
		}

		order, err := Checkout(db, userID, input.ShippingAddress, input.PaymentMethod, deliveryFee)
		if err != nil {
			middleware.RecordOperation("checkout", false)
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
			case errors.Is(err, ErrBadAddress):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All shipping address fields are required"})
			case errors.Is(err, ErrInvalidPayment):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment method"})
			default:
				slog.Error("checkout failed", "user_id", userID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to process checkout"})
			}
			return
		}

		middleware.RecordOperation("checkout", true)
		broadcastOrderEvent("order_created", order)

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Order placed successfully",
			"orderId":  order.ID,
			"orderRef": order.OrderRef,
			"total":    order.Total,
		})
	}
}
