package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/controllers"
	"github.com/mahendrayu/resto-pos/middlewares"
	"github.com/mahendrayu/resto-pos/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Gin snapshots the middleware chain at route registration, so the
	// limiter must be attached before any route below.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuItemCtrl := controllers.NewMenuItemController(db)
	chargeCtrl := controllers.NewChargeController(db)
	orderCtrl := controllers.NewOrderController(db)
	posCtrl := controllers.NewPOSController(db)
	reservationCtrl := controllers.NewReservationController(db)
	businessCtrl := controllers.NewBusinessController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// POS terminal websocket, token in query string
	r.GET("/terminal/ws", middlewares.WebSocketAuthMiddleware(), controllers.TerminalHandler(db))

	api := r.Group("/api")

	// Login/register behind the strict limiter
	public := api.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Storefront, no auth: browse the menu, quote a cart, check out
	api.GET("/categories", categoryCtrl.GetAllCategories)
	api.GET("/menu-items", menuItemCtrl.GetAllMenuItems)
	api.GET("/menu-items/:item_id", menuItemCtrl.GetMenuItemByID)
	api.POST("/pos/quote", posCtrl.QuoteCart)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// Staff endpoints (admin passes every role check)
	staff := api.Group("/")
	staff.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleStaff))
	{
		staff.GET("/profile", userCtrl.GetProfile)
		staff.POST("/logout", userCtrl.Logout)
		staff.GET("/users", userCtrl.GetAllUsers)

		staff.GET("/orders", orderCtrl.GetAllOrders)
		staff.PATCH("/orders/:order_id", orderCtrl.PatchOrder)
		staff.PUT("/orders/:order_id", orderCtrl.UpdateOrder)

		staff.GET("/reservations", reservationCtrl.GetAllReservations)
		staff.POST("/reservations", reservationCtrl.CreateReservation)
		staff.PATCH("/reservations/:reservation_id", reservationCtrl.PatchReservation)

		staff.GET("/charges", chargeCtrl.GetAllCharges)
		staff.GET("/business", businessCtrl.GetBusiness)
	}

	// Admin-only dashboard endpoints
	admin := api.Group("/")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PUT("/categories/:category_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		admin.POST("/menu-items", menuItemCtrl.CreateMenuItem)
		admin.PUT("/menu-items/:item_id", menuItemCtrl.UpdateMenuItem)
		admin.DELETE("/menu-items/:item_id", menuItemCtrl.DeleteMenuItem)

		admin.POST("/charges", chargeCtrl.CreateCharge)
		admin.PUT("/charges/:charge_id", chargeCtrl.UpdateCharge)
		admin.DELETE("/charges/:charge_id", chargeCtrl.DeleteCharge)

		admin.PUT("/users/:user_id", userCtrl.UpdateUser)
		admin.DELETE("/users/:user_id", userCtrl.DeleteUser)

		admin.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
		admin.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

		admin.PUT("/business", businessCtrl.UpdateBusiness)
	}

	return r
}
