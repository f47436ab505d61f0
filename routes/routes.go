package routes

import (
	"souk/ads"
	"souk/cart"
	"souk/middleware"
	"souk/pay"
	"souk/products"
	"souk/ratelim"
	"souk/users"

	"github.com/julienschmidt/httprouter"
)

func AddUserRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/users", middleware.Authenticate(users.ListUsers))
	router.GET("/user/:id", users.GetUser)
	router.GET("/users/:email/role", users.GetUserRole)
	router.POST("/users", rateLimiter.Limit(users.CreateUser))
	router.PATCH("/users/:email/role", rateLimiter.Limit(users.UpdateUserRole))
}

func AddProductRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/products", products.ListProducts)
	router.GET("/products/:id", products.GetProduct)
	router.POST("/products", rateLimiter.Limit(products.CreateProduct))
	router.PATCH("/products/:id", rateLimiter.Limit(products.UpdateProduct))
	router.PATCH("/products/:id/adStatus", rateLimiter.Limit(products.UpdateProductAdStatus))
	router.DELETE("/products/:id", rateLimiter.Limit(products.DeleteProduct))

	router.GET("/productCategories", products.ListProductCategories)
}

func AddCartRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/carts", cart.ListCartItems)
	router.GET("/carts/:id", cart.GetCartItem)
	router.POST("/carts", rateLimiter.Limit(cart.AddCartItem))
	router.DELETE("/carts/:id", rateLimiter.Limit(cart.DeleteCartItem))
}

func AddPayRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/payments", pay.ListPayments)
	router.POST("/payments", rateLimiter.Limit(pay.RecordPayment))
	router.POST("/create-payment-intent", rateLimiter.Limit(pay.CreatePaymentIntent))
}

func AddAdsRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/advertisements", ads.ListAds)
	router.GET("/advertisements/:id", ads.GetAd)
	router.POST("/advertisements", rateLimiter.Limit(ads.CreateAd))
	router.PATCH("/advertisements/:id", rateLimiter.Limit(ads.UpdateAd))
	router.PATCH("/advertisements/:id/status", rateLimiter.Limit(ads.UpdateAdStatus))
	router.DELETE("/advertisements/:id", rateLimiter.Limit(ads.DeleteAd))
}

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddUserRoutes(router, rateLimiter)
	AddProductRoutes(router, rateLimiter)
	AddCartRoutes(router, rateLimiter)
	AddPayRoutes(router, rateLimiter)
	AddAdsRoutes(router, rateLimiter)
}
