package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	wishlistrepo "storefront/internal/repository/wishlist"
	cartstore "storefront/internal/store/cart"
	productstore "storefront/internal/store/products"
	wishliststore "storefront/internal/store/wishlist"
)

// ProductGetter resolves a single product by id, for the detail view and
// for add-by-id intents.
type ProductGetter interface {
	Get(ctx context.Context, id int) (*domain.Product, error)
}

// Deps carries the stores and clients the handlers dispatch to. Handlers
// never touch store state directly; every mutation goes through a store
// operation.
type Deps struct {
	Products *productstore.Store
	Cart     *cartstore.Store
	Wishlist *wishliststore.Store
	Catalog  ProductGetter
	Storage  wishlistrepo.Storage
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Storage))

	sf := router.Group("/storefront")
	{
		sf.GET("/products", listProductsHandler(deps.Products, logger))
		sf.GET("/products/search", searchProductsHandler(deps.Products, logger))
		sf.GET("/products/category/:slug", productsByCategoryHandler(deps.Products, logger))
		sf.GET("/products/:id", productDetailHandler(deps.Catalog))
		sf.GET("/categories", categoriesHandler(deps.Products, logger))

		sf.GET("/cart", getCartHandler(deps.Cart))
		sf.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Catalog))
		sf.PATCH("/cart/items/:id", updateCartItemHandler(deps.Cart))
		sf.POST("/cart/items/:id/toggle", toggleCartItemHandler(deps.Cart))
		sf.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart))

		sf.GET("/wishlist", getWishlistHandler(deps.Wishlist))
		sf.POST("/wishlist", addWishlistItemHandler(deps.Wishlist, deps.Catalog))
		sf.DELETE("/wishlist/:id", removeWishlistItemHandler(deps.Wishlist))
	}

	return router, nil
}
