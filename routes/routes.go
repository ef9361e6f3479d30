package routes

import (
	"orderapi/controllers"
	"orderapi/middlewares"
	"orderapi/repository"
	"orderapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	customerSvc := services.NewCustomerService(db, customerRepo)
	itemSvc := services.NewItemService(db, itemRepo)
	orderSvc := services.NewOrderService(db, orderRepo, customerRepo, services.NewCatalog(itemRepo))

	// Controllers
	customerCtrl := controllers.NewCustomerController(customerSvc)
	itemCtrl := controllers.NewItemController(itemSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	customers := r.Group("/customers")
	{
		customers.POST("", customerCtrl.Create)
		customers.GET("/:id", customerCtrl.Get)
		customers.PUT("/:id", customerCtrl.Update)
		customers.DELETE("/:id", customerCtrl.Delete)
	}

	items := r.Group("/items")
	{
		items.POST("", itemCtrl.Create)
		items.GET("/:id", itemCtrl.Get)
		items.PUT("/:id", itemCtrl.Update)
		items.DELETE("/:id", itemCtrl.Delete)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
	}
}

// NewRouter builds the engine with request logging, recovery and every route.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())
	RegisterRoutes(r, db)
	return r
}
