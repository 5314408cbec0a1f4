package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/controllers"
	"github.com/elroydev/restaurant-ordering/middlewares"
	"github.com/elroydev/restaurant-ordering/repository"
	"github.com/elroydev/restaurant-ordering/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services. Cart mutations and order placement share one lock registry
	// so that snapshot-and-clear never interleaves with a concurrent add.
	locks := services.NewCartLocker()
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, locks)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, locks)
	billSvc := services.NewBillService(orderSvc, restRepo, userRepo)

	// Controllers
	userCtrl := controllers.NewUserController(userRepo)
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	billCtrl := controllers.NewBillController(billSvc)
	restCtrl := controllers.NewRestaurantController(restRepo)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	r.GET("/restaurant", restCtrl.GetRestaurant)
	r.GET("/menu", menuCtrl.GetMenu)
	r.GET("/menu/:item_id", menuCtrl.GetMenuItemByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)

	// CART
	auth.GET("/cart", cartCtrl.GetCart)
	auth.POST("/cart/add", cartCtrl.AddToCart)
	auth.PUT("/cart/update/:item_id", cartCtrl.UpdateCartItem)
	auth.DELETE("/cart/remove/:item_id", cartCtrl.RemoveCartItem)
	auth.DELETE("/cart/clear", cartCtrl.ClearCart)

	// ORDERS
	auth.POST("/orders", orderCtrl.PlaceOrder)
	auth.GET("/orders", orderCtrl.GetUserOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.GET("/orders/:order_id/bill", billCtrl.GetOrderBill)
	auth.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())

	admin.GET("/orders", orderCtrl.GetAllOrders)
	admin.GET("/orders/pending", orderCtrl.GetPendingOrders)
	admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	admin.GET("/menu", menuCtrl.GetAllMenuItems)
	admin.POST("/menu", menuCtrl.CreateMenuItem)
	admin.PATCH("/menu/:item_id", menuCtrl.UpdateMenuItem)
	admin.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)

	return r
}
