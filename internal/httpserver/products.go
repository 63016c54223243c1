package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	productstore "storefront/internal/store/products"
)

type productListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Loading  bool             `json:"loading"`
}

type categoryListResponse struct {
	Categories []domain.Category `json:"categories"`
}

// renderProjection writes the store's current product projection. A failed
// fetch is logged and the prior (stale but valid) projection is rendered
// anyway; the view is never blocked on a catalog failure.
func renderProjection(c *gin.Context, store *productstore.Store, logger *log.Logger, err error) {
	if err != nil {
		logger.Printf("product fetch: %v", err)
	}
	products := store.Products()
	c.JSON(http.StatusOK, productListResponse{
		Products: products,
		Total:    len(products),
		Loading:  store.Loading(),
	})
}

func listProductsHandler(store *productstore.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.FetchAll(c.Request.Context())
		renderProjection(c, store, logger, err)
	}
}

func searchProductsHandler(store *productstore.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.Search(c.Request.Context(), c.Query("q"))
		renderProjection(c, store, logger, err)
	}
}

func productsByCategoryHandler(store *productstore.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.FetchByCategory(c.Request.Context(), c.Param("slug"))
		renderProjection(c, store, logger, err)
	}
}

func categoriesHandler(store *productstore.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.FetchCategories(c.Request.Context()); err != nil {
			logger.Printf("fetch categories: %v", err)
		}
		c.JSON(http.StatusOK, categoryListResponse{Categories: store.Categories()})
	}
}

func productDetailHandler(catalog ProductGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}
		product, err := catalog.Get(c.Request.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"message": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
