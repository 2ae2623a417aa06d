package cartControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/middleware"
	"github.com/sizets/tabletstore-api/models"
)

var ErrProductNotFound = errors.New("product not found")

type AddItemInput struct {
	TabletID uint   `json:"tabletId" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateItemInput struct {
	TabletID uint   `json:"tabletId" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required,min=0"`
}

// -------- Core Logic --------

// getOrCreateCart returns the user's single cart row, creating it when
// absent. An empty cart is a cart with zero item rows, never a missing
// row.
func getOrCreateCart(db *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		err = db.Create(&cart).Error
	}
	return cart, err
}

// loadCart re-reads the cart with its items for response payloads.
func loadCart(db *gorm.DB, cartID uint) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").First(&cart, "cart_id = ?", cartID).Error
	return cart, err
}

// AddItem adds quantity of (productID, size) to the user's cart. An
// existing line is incremented; a new line captures a snapshot of the
// product's name, price, image and description.
func AddItem(db *gorm.DB, userID string, productID uint, size string, quantity int) (models.Cart, error) {
	var product models.Product
	if err := db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, ErrProductNotFound
		}
		return models.Cart{}, err
	}

	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return models.Cart{}, err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ? AND size = ?",
		cart.CartID, productID, size).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:             cart.CartID,
			ProductID:          product.ID,
			Size:               size,
			Quantity:           quantity,
			ProductName:        product.Name,
			ProductPrice:       product.Price,
			ProductImage:       product.MainImage(),
			ProductDescription: product.Description,
			AddedAt:            time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return models.Cart{}, err
		}
	case err != nil:
		return models.Cart{}, err
	default:
		item.Quantity += quantity
		if err := db.Save(&item).Error; err != nil {
			return models.Cart{}, err
		}
	}

	return loadCart(db, cart.CartID)
}

// UpdateItem sets the quantity of an existing (productID, size) line.
// Quantity zero removes the line; removing an absent line is a no-op.
// Unlike AddItem this is a set, not a delta.
func UpdateItem(db *gorm.DB, userID string, productID uint, size string, quantity int) (models.Cart, error) {
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return models.Cart{}, err
	}

	if quantity == 0 {
		if err := db.Where("cart_id = ? AND product_id = ? AND size = ?",
			cart.CartID, productID, size).Delete(&models.CartItem{}).Error; err != nil {
			return models.Cart{}, err
		}
	} else {
		if err := db.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ? AND size = ?", cart.CartID, productID, size).
			Update("quantity", quantity).Error; err != nil {
			return models.Cart{}, err
		}
	}

	return loadCart(db, cart.CartID)
}

// ClearCart removes every line unconditionally.
func ClearCart(db *gorm.DB, userID string) error {
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return err
	}
	return db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}

// GetCart returns the cart entries verbatim, with no product freshness
// check.
func GetCart(db *gorm.DB, userID string) (models.Cart, error) {
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return models.Cart{}, err
	}
	return loadCart(db, cart.CartID)
}

// -------- Handlers --------

// POST /cart/add
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tablet ID and size are required"})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		cart, err := AddItem(db, userID, input.TabletID, input.Size, input.Quantity)
		if err != nil {
			middleware.RecordOperation("cart_add", false)
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Tablet not found"})
				return
			}
			slog.Error("failed to add cart item", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add item to cart"})
			return
		}

		middleware.RecordOperation("cart_add", true)
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       "Item added to cart",
			"cartItemCount": cart.ItemCount(),
			"cart":          cart.Items,
		})
	}
}

// GET /cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := GetCart(db, userID)
		if err != nil {
			slog.Error("failed to fetch cart", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching cart data"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart.Items})
	}
}

// PUT /cart/update
func UpdateItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tablet ID, size, and quantity are required"})
			return
		}

		cart, err := UpdateItem(db, userID, input.TabletID, input.Size, *input.Quantity)
		if err != nil {
			middleware.RecordOperation("cart_update", false)
			slog.Error("failed to update cart", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
			return
		}

		message := "Cart updated"
		if *input.Quantity == 0 {
			message = "Item removed from cart"
		}
		middleware.RecordOperation("cart_update", true)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "cart": cart.Items})
	}
}

// DELETE /cart/clear
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := ClearCart(db, userID); err != nil {
			slog.Error("failed to clear cart", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared successfully"})
	}
}
