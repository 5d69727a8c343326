package routes

import (
	"github.com/Thariq15/react-cafe/configs"
	"github.com/Thariq15/react-cafe/controllers"
	"github.com/Thariq15/react-cafe/middlewares"
	"github.com/Thariq15/react-cafe/pkg/metrics"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/Thariq15/react-cafe/services"
	"github.com/Thariq15/react-cafe/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.CartHub, m *metrics.ServerMetrics) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	// Services; the hub gets told about every cart mutation so websocket
	// subscribers see fresh snapshots.
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	cartSvc.Notifier = hub
	checkoutSvc := services.NewCheckoutService(db, cartRepo, txRepo)
	checkoutSvc.Notifier = hub
	txSvc := services.NewTransactionService(txRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(cartSvc)
	txCtrl := controllers.NewTransactionController(checkoutSvc, txSvc, m)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Menu (public read)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Cart + checkout (owner-scoped)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.AdjustQuantity)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)
		u.POST("/cart/promo", cartCtrl.ApplyPromo)

		u.POST("/checkout", txCtrl.DoCheckout)
		u.GET("/profile/transactions", txCtrl.ListMine)
	}

	// Live cart subscription (token via query for browser websockets)
	r.GET("/ws/cart", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleCart)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/menu", menuCtrl.Create)
		admin.GET("/transactions", txCtrl.ListAll)
		admin.PATCH("/transactions/:id/status", txCtrl.SetStatus)
	}
}
