package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/uguryukselwork/quickserve/controllers"
	"github.com/uguryukselwork/quickserve/hub"
	"github.com/uguryukselwork/quickserve/layout"
	"github.com/uguryukselwork/quickserve/middlewares"
	"github.com/uguryukselwork/quickserve/notifier"
	"github.com/uguryukselwork/quickserve/services"
	"github.com/uguryukselwork/quickserve/settings"
	"github.com/uguryukselwork/quickserve/store"
)

// Deps bundles everything the routes need. main wires it once.
type Deps struct {
	DB       *gorm.DB
	Store    *store.Store
	Settings *settings.Store
	Editor   *layout.Editor
	Engine   *notifier.Engine
	Hub      *hub.Hub
	Checkout *services.CheckoutService
	Assist   *services.AssistantService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(deps.DB)
	menuCtrl := controllers.NewMenuController(deps.Store)
	cartCtrl := controllers.NewCartController(deps.Store)
	orderCtrl := controllers.NewOrderController(deps.Store, deps.Checkout)
	callCtrl := controllers.NewCallController(deps.Store)
	layoutCtrl := controllers.NewLayoutController(deps.Editor, deps.Hub)
	settingsCtrl := controllers.NewSettingsController(deps.Settings, deps.Engine)
	assistantCtrl := controllers.NewAssistantController(deps.Assist)
	staffCtrl := controllers.NewStaffController(deps.Store, deps.Engine)
	wsCtrl := controllers.NewWSController(deps.Hub)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter for login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// -- CUSTOMER (no auth, keyed by table) --
	r.GET("/menu", menuCtrl.GetMenu)

	r.GET("/tables/:table_id/cart", cartCtrl.GetCart)
	r.POST("/tables/:table_id/cart/items", cartCtrl.AddItem)
	r.DELETE("/tables/:table_id/cart/items/:item_id", cartCtrl.RemoveItem)
	r.PATCH("/tables/:table_id/cart/items/:item_id/note", cartCtrl.UpdateNote)

	r.POST("/tables/:table_id/orders", orderCtrl.PlaceOrder)
	r.POST("/tables/:table_id/checkout", orderCtrl.BeginCheckout)
	r.GET("/tables/:table_id/orders", orderCtrl.GetTableOrders)
	r.DELETE("/orders/:order_id", orderCtrl.CancelOrder)

	r.POST("/tables/:table_id/calls", callCtrl.RaiseCall)

	r.POST("/tables/:table_id/assistant", assistantCtrl.Ask)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/staff")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	auth.GET("/dashboard/stats", staffCtrl.Dashboard)
	auth.POST("/refresh", staffCtrl.Refresh)

	// ORDERS
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	auth.PATCH("/orders/:order_id/payment", orderCtrl.UpdatePaymentStatus)

	// CALLS
	auth.GET("/calls", callCtrl.GetCalls)
	auth.PATCH("/calls/:call_id/resolve", callCtrl.ResolveCall)
	auth.DELETE("/calls/responded", callCtrl.ClearResponded)

	// MENU
	auth.PATCH("/menu/:menu_id/image", menuCtrl.UpdateMenuImage)

	// TABLE LAYOUT
	auth.GET("/layout", layoutCtrl.GetLayout)
	auth.GET("/layout/tables/:table_id", layoutCtrl.GetTableView)
	auth.POST("/layout/edit", layoutCtrl.EnterEditMode)
	auth.POST("/layout/save", layoutCtrl.SaveLayout)
	auth.POST("/layout/tables", layoutCtrl.AddTable)
	auth.DELETE("/layout/tables/:table_id", layoutCtrl.RemoveTable)
	auth.PATCH("/layout/tables/:table_id/name", layoutCtrl.RenameTable)
	auth.POST("/layout/tables/:table_id/select", layoutCtrl.SelectTable)
	auth.POST("/layout/tables/:table_id/drag", layoutCtrl.BeginDrag)
	auth.POST("/layout/tables/:table_id/resize", layoutCtrl.BeginResize)
	auth.POST("/layout/pointer", layoutCtrl.PointerMove)
	auth.POST("/layout/release", layoutCtrl.ReleaseGesture)

	// SETTINGS
	auth.GET("/settings", settingsCtrl.GetSettings)
	auth.PUT("/settings", settingsCtrl.UpdateSettings)
	auth.POST("/settings/preview", settingsCtrl.PreviewSound)

	// ----------------------------------------------------------------
	//                      WEBSOCKETS
	// ----------------------------------------------------------------
	wsGroup := r.Group("/ws")
	wsGroup.GET("/tables/:table_id", wsCtrl.CustomerWS)

	wsStaff := wsGroup.Group("/staff")
	wsStaff.Use(middlewares.AuthMiddleware())
	{
		wsStaff.GET("", wsCtrl.StaffWS)
	}

	return r
}
