package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	wishliststore "storefront/internal/store/wishlist"
)

type wishlistResponse struct {
	Items []domain.Product `json:"items"`
}

type addWishlistItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

func getWishlistHandler(store *wishliststore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, wishlistResponse{Items: store.Items()})
	}
}

func addWishlistItemHandler(store *wishliststore.Store, catalog ProductGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addWishlistItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
			return
		}
		product, err := catalog.Get(c.Request.Context(), req.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"message": "catalog unavailable"})
			return
		}
		store.Add(*product)
		c.JSON(http.StatusCreated, wishlistResponse{Items: store.Items()})
	}
}

func removeWishlistItemHandler(store *wishliststore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}
		store.Remove(id)
		c.JSON(http.StatusOK, wishlistResponse{Items: store.Items()})
	}
}
