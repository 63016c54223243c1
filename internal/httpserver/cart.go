package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	cartstore "storefront/internal/store/cart"
)

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	// SelectedTotal is the sum over selected lines, rounded to two
	// decimal places for presentation only.
	SelectedTotal string `json:"selectedTotal"`
}

type addCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

type updateCartItemRequest struct {
	Quantity interface{} `json:"quantity"`
}

func toCartResponse(store *cartstore.Store) cartResponse {
	return cartResponse{
		Items:         store.Items(),
		SelectedTotal: store.SelectedTotal().StringFixed(2),
	}
}

func getCartHandler(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func addCartItemHandler(store *cartstore.Store, catalog ProductGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
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
		c.JSON(http.StatusCreated, toCartResponse(store))
	}
}

func updateCartItemHandler(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
			return
		}
		store.UpdateQuantity(id, coerceQuantity(req.Quantity))
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func toggleCartItemHandler(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}
		store.ToggleSelect(id)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func removeCartItemHandler(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}
		store.Remove(id)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

// coerceQuantity turns whatever the client sent into an integer quantity.
// Anything non-numeric (or absent) coerces to zero, which UpdateQuantity
// treats as removal; a malformed quantity never rejects the operation.
func coerceQuantity(raw interface{}) int {
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
		return 0
	default:
		return 0
	}
}
