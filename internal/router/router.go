package router

import (
	"github.com/josebazania/restaurantepos/internal/config"
	"github.com/josebazania/restaurantepos/internal/handler"
	"github.com/josebazania/restaurantepos/internal/infra"
	"github.com/josebazania/restaurantepos/internal/middleware"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"
	"github.com/josebazania/restaurantepos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps are the optional infrastructure pieces. Nil fields disable the
// feature they back.
type Deps struct {
	Redis    *redis.Client
	Kitchen  *infra.KitchenPublisher
	Invoices service.InvoiceQueue
	Events   *service.Notifier
	Users    []model.User
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← State ← SlotStore
func New(cfg *config.Config, st *repository.State, deps Deps) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	apiLimit, err := middleware.RateLimiter(cfg.RateLimit, "Demasiadas solicitudes. Intente nuevamente en un momento.")
	if err != nil {
		return nil, err
	}
	loginLimit, err := middleware.RateLimiter(cfg.LoginRateLimit, "Demasiados intentos de login. Intente en 1 minuto.")
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(apiLimit)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc, err := service.NewAuthService(st, deps.Events, cfg, deps.Users)
	if err != nil {
		return nil, err
	}
	catalogSvc := service.NewCatalogService(st, deps.Events)
	tableSvc := service.NewTableService(st, deps.Events)
	orderSvc := service.NewOrderService(st, deps.Events)
	cashSvc := service.NewCashService(st, deps.Events)
	checkoutSvc := service.NewCheckoutService(st, deps.Events, deps.Invoices, cfg.DecrementStockOnSale)
	reportSvc := service.NewReportService(st)
	invoiceSvc := service.NewInvoiceService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(catalogSvc)
	tablesH := handler.NewTablesHandler(tableSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	cashH := handler.NewCashHandler(cashSvc)
	salesH := handler.NewSalesHandler(checkoutSvc, invoiceSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	var broker handler.BrokerStatus
	if deps.Kitchen != nil {
		broker = deps.Kitchen
	}
	r.GET("/health", handler.Health(st.Store(), deps.Redis, broker))
	r.POST("/v1/auth/login", loginLimit, authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, authSvc)
	dest := middleware.RequireDestination
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/me", authH.Me)

		// catalog reads serve every screen that sells
		v1.GET("/products", productsH.List)
		v1.GET("/products/:id", productsH.Get)
		prods := v1.Group("/products", dest(model.DestInventory))
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Delete)
			prods.PATCH("/:id/stock", productsH.SetStock)
		}

		v1.GET("/dashboard", dest(model.DestDashboard), reportsH.Dashboard)
		kitchen := v1.Group("/kitchen", dest(model.DestDashboard))
		{
			kitchen.GET("/orders", ordersH.KitchenQueue)
			kitchen.POST("/orders/:id/ready", ordersH.MarkReady)
		}

		v1.GET("/orders", dest(model.DestTables), ordersH.ListActive)
		tables := v1.Group("/tables", dest(model.DestTables))
		{
			tables.GET("", tablesH.List)
			tables.GET("/:id", tablesH.Get)
			tables.PATCH("/:id/status", tablesH.SetStatus)

			tables.GET("/:id/cart", ordersH.GetCart)
			tables.DELETE("/:id/cart", ordersH.ClearCart)
			tables.POST("/:id/cart/items", ordersH.AddItem)
			tables.PATCH("/:id/cart/items/:product_id", ordersH.AdjustItem)
			tables.PUT("/:id/cart/items/:product_id/notes", ordersH.SetNote)
			tables.DELETE("/:id/cart/items/:product_id", ordersH.RemoveItem)

			tables.POST("/:id/order/hold", ordersH.Hold)
			tables.POST("/:id/order/kitchen", ordersH.SendToKitchen)
		}

		pos := v1.Group("/pos", dest(model.DestPOS), middleware.RequireOpenSession(cashSvc))
		{
			pos.POST("/checkout", salesH.Checkout)
		}
		v1.GET("/sales/:id/invoice", dest(model.DestPOS), salesH.Invoice)

		cash := v1.Group("/cash", dest(model.DestCash))
		{
			cash.POST("/open", cashH.Open)
			cash.GET("/current", cashH.Current)
			cash.POST("/close", cashH.Close)
		}

		reports := v1.Group("/reports", dest(model.DestReports))
		{
			reports.GET("/hourly", reportsH.SalesByHour)
			reports.GET("/payments", reportsH.PaymentTotals)
		}
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
