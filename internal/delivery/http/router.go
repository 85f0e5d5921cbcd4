package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/dsentered/lasatastore/internal/config"
	authhandler "github.com/dsentered/lasatastore/internal/delivery/http/handler/auth"
	brandhandler "github.com/dsentered/lasatastore/internal/delivery/http/handler/brand"
	categoryhandler "github.com/dsentered/lasatastore/internal/delivery/http/handler/category"
	producthandler "github.com/dsentered/lasatastore/internal/delivery/http/handler/product"
	purchasehandler "github.com/dsentered/lasatastore/internal/delivery/http/handler/purchase"
	supplierhandler "github.com/dsentered/lasatastore/internal/delivery/http/handler/supplier"
	"github.com/dsentered/lasatastore/internal/delivery/middleware"
	"github.com/dsentered/lasatastore/internal/repository/postgres"
	authuc "github.com/dsentered/lasatastore/internal/usecase/auth"
	branduc "github.com/dsentered/lasatastore/internal/usecase/brand"
	categoryuc "github.com/dsentered/lasatastore/internal/usecase/category"
	productuc "github.com/dsentered/lasatastore/internal/usecase/product"
	purchaseuc "github.com/dsentered/lasatastore/internal/usecase/purchase"
	supplieruc "github.com/dsentered/lasatastore/internal/usecase/supplier"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, db *pgxpool.Pool, log *zap.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Auth wiring
	userRepo := postgres.NewUserRepo(db)
	authUC := authuc.New(userRepo, cfg.JWTSecret, cfg.JWTExpiresMinutes)
	authH := authhandler.New(authUC)

	// Public routes
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)

	// Everything below requires a valid token
	protected := api.Group("", middleware.RequireJWT(middleware.JWTConfig{
		Secret: cfg.JWTSecret,
	}))

	// Brand wiring
	brandH := brandhandler.New(branduc.New(postgres.NewBrandRepo(db)))
	protected.Get("/brands", brandH.List)
	protected.Post("/brands", brandH.Create)
	protected.Patch("/brands/:id", brandH.Update)
	protected.Delete("/brands/:id", brandH.Delete)

	// Category wiring
	categoryH := categoryhandler.New(categoryuc.New(postgres.NewCategoryRepo(db)))
	protected.Get("/categories", categoryH.List)
	protected.Post("/categories", categoryH.Create)
	protected.Patch("/categories/:id", categoryH.Update)
	protected.Delete("/categories/:id", categoryH.Delete)

	// Supplier wiring
	supplierH := supplierhandler.New(supplieruc.New(postgres.NewSupplierRepo(db)))
	protected.Get("/suppliers", supplierH.List)
	protected.Post("/suppliers", supplierH.Create)
	protected.Patch("/suppliers/:id", supplierH.Update)
	protected.Delete("/suppliers/:id", supplierH.Delete)

	// Product wiring
	productH := producthandler.New(productuc.New(postgres.NewProductRepo(db)))
	protected.Get("/products", productH.List)
	protected.Post("/products", productH.Create)
	protected.Patch("/products/:id", productH.Update)
	protected.Delete("/products/:id", productH.Delete)
	protected.Get("/products/:id/movements", productH.Movements)

	// Purchase order ledger wiring
	purchaseStore := postgres.NewPurchaseStore(db)
	purchaseUC := purchaseuc.New(purchaseStore, cfg.StockPolicy, log)
	purchaseH := purchasehandler.New(purchaseUC)
	protected.Get("/purchases", purchaseH.List)
	protected.Post("/purchases", purchaseH.Create)
	protected.Get("/purchases/:id", purchaseH.Get)
	protected.Put("/purchases/:id", purchaseH.Update)
	protected.Delete("/purchases/:id", purchaseH.Delete)
}
