package router

import (
	"time"

	"github.com/tahrim-ahmed/invoice-api/internal/config"
	"github.com/tahrim-ahmed/invoice-api/internal/handler"
	"github.com/tahrim-ahmed/invoice-api/internal/middleware"
	"github.com/tahrim-ahmed/invoice-api/internal/repository"
	"github.com/tahrim-ahmed/invoice-api/internal/service"
	"github.com/tahrim-ahmed/invoice-api/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	purposeRepo := repository.NewPurposeRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	statementRepo := repository.NewStatementRepository(db)
	stockRepo := repository.NewStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours, cfg.JWTRefreshHours)
	clientSvc := service.NewClientService(clientRepo)
	productSvc := service.NewProductService(productRepo)
	purposeSvc := service.NewPurposeService(purposeRepo)
	statementSvc := service.NewStatementService(statementRepo)
	stockSvc := service.NewStockService(stockRepo, productRepo)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo, statementRepo, dispatcher, db)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, productRepo, statementRepo, db)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	productsH := handler.NewProductsHandler(productSvc)
	purposesH := handler.NewPurposesHandler(purposeSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc)
	statementsH := handler.NewStatementsHandler(statementSvc)
	stockH := handler.NewStockHandler(stockSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. Deletes are destructive and restricted to admins.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole("admin")
	v1 := api.Group("/v1", jwtMW)
	{
		clients := v1.Group("/clients")
		{
			clients.POST("", clientsH.Create)
			clients.GET("/search", clientsH.Search)
			clients.GET("/pagination", clientsH.Paginate)
			clients.GET("/:id", clientsH.Find)
			clients.PUT("/:id", clientsH.Update)
			clients.DELETE("/:id", adminOnly, clientsH.Remove)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("/search", productsH.Search)
			products.GET("/pagination", productsH.Paginate)
			products.GET("/:id", productsH.Find)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", adminOnly, productsH.Remove)
		}

		purposes := v1.Group("/purposes")
		{
			purposes.POST("", purposesH.Create)
			purposes.GET("/search", purposesH.Search)
			purposes.GET("/pagination", purposesH.Paginate)
			purposes.GET("/:id", purposesH.Find)
			purposes.PUT("/:id", purposesH.Update)
			purposes.DELETE("/:id", adminOnly, purposesH.Remove)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.POST("", purchasesH.Create)
			purchases.GET("/search", purchasesH.Search)
			purchases.GET("/pagination", purchasesH.Paginate)
			purchases.GET("/:id", purchasesH.Find)
			purchases.DELETE("/:id", adminOnly, purchasesH.Remove)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.POST("", invoicesH.Create)
			invoices.GET("/search", invoicesH.Search)
			invoices.GET("/pagination", invoicesH.Paginate)
			invoices.GET("/chart", invoicesH.Chart)
			invoices.GET("/:id", invoicesH.Find)
			invoices.PATCH("/:id/paid", invoicesH.MarkPaid)
			invoices.PATCH("/:id/partial-payment", invoicesH.PartialPayment)
			invoices.DELETE("/:id", adminOnly, invoicesH.Remove)
		}

		statements := v1.Group("/statements")
		{
			statements.POST("", statementsH.Create)
			statements.GET("/search", statementsH.Search)
			statements.GET("/pagination", statementsH.Paginate)
			statements.GET("/summary", statementsH.Summary)
			statements.GET("/reference/:type/:id", statementsH.ListByReference)
			statements.GET("/:id", statementsH.Find)
			statements.PUT("/:id", statementsH.Update)
			statements.DELETE("/:id", adminOnly, statementsH.Remove)
		}

		stock := v1.Group("/stock")
		{
			stock.POST("", stockH.Create)
			stock.GET("/search", stockH.Search)
			stock.GET("/pagination", stockH.Paginate)
			stock.GET("/:id", stockH.Find)
			stock.DELETE("/:id", adminOnly, stockH.Remove)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
