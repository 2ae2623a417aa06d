package productControllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/middleware"
	"github.com/sizets/tabletstore-api/models"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category" binding:"required"`
	SubCategory string   `json:"sub_category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Bestseller  bool     `json:"bestseller"`
	Stock       int      `json:"stock" binding:"omitempty,min=0"`
}

func imageRows(urls []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, models.ProductImage{Position: i, URL: url})
	}
	return images
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product: " + err.Error()})
			return
		}
		if !models.ValidCategory(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Price:       input.Price,
			Category:    models.ProductCategory(input.Category),
			SubCategory: input.SubCategory,
			Description: input.Description,
			Images:      imageRows(input.Images),
			Bestseller:  input.Bestseller,
			Stock:       input.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			middleware.RecordOperation("product_create", false)
			slog.Error("failed to create product", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}

		middleware.RecordOperation("product_create", true)
		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			slog.Error("failed to fetch product", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product: " + err.Error()})
			return
		}
		if !models.ValidCategory(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&product).Updates(map[string]interface{}{
				"name":         input.Name,
				"price":        input.Price,
				"category":     input.Category,
				"sub_category": input.SubCategory,
				"description":  input.Description,
				"bestseller":   input.Bestseller,
				"stock":        input.Stock,
			}).Error; err != nil {
				return err
			}
			// Replace the ordered image list wholesale.
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			images := imageRows(input.Images)
			for i := range images {
				images[i].ProductID = product.ID
			}
			if len(images) == 0 {
				return nil
			}
			return tx.Create(&images).Error
		})
		if err != nil {
			middleware.RecordOperation("product_update", false)
			slog.Error("failed to update product", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}

		var updated models.Product
		if err := withImages(db).First(&updated, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
			return
		}

		middleware.RecordOperation("product_update", true)
		c.JSON(http.StatusOK, gin.H{"success": true, "product": updated})
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			middleware.RecordOperation("product_delete", false)
			slog.Error("failed to delete product", "id", id, "error", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		middleware.RecordOperation("product_delete", true)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}
