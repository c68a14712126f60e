package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/supamart/pos-api/internal/application/service"
	"github.com/supamart/pos-api/internal/config"
	"github.com/supamart/pos-api/internal/infrastructure/database"
	"github.com/supamart/pos-api/internal/infrastructure/repository"
	"github.com/supamart/pos-api/internal/presentation/http/handler"
	"github.com/supamart/pos-api/internal/presentation/http/routes"
	"github.com/supamart/pos-api/pkg/metrics"
	"github.com/supamart/pos-api/pkg/printer"
	"github.com/supamart/pos-api/pkg/storage"
	"github.com/supamart/pos-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	taxRate, err := decimal.NewFromString(cfg.Tax.Rate)
	if err != nil {
		log.Fatalf("Invalid TAX_RATE %q: %v", cfg.Tax.Rate, err)
	}

	store, err := storage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	device, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Fatalf("Failed to initialize printer: %v", err)
	}
	defer device.Close()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, store)
	cartService := service.NewCartService(cartRepo, productRepo, taxRate)
	saleService := service.NewSaleService(saleRepo, cartRepo, productRepo)
	printerService := service.NewPrinterService(
		saleService,
		device,
		printer.NewReceiptBuilder(cfg.Printer.CharWidth),
		cfg.App.Name,
	)

	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Product: handler.NewProductHandler(productService),
		Cart:    handler.NewCartHandler(cartService),
		Sale:    handler.NewSaleHandler(saleService, printerService),
	}

	httpMetrics := metrics.NewHTTPMetrics("api")

	router := routes.Setup(cfg, handlers, jwtManager, store, idempotencyRepo, httpMetrics)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Expired idempotency keys pile up; sweep them hourly.
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-sweeperCtx.Done():
				return
			case <-ticker.C:
				if err := idempotencyRepo.DeleteExpired(sweeperCtx); err != nil {
					log.Printf("Failed to delete expired idempotency keys: %v", err)
				}
			}
		}
	}()

	go func() {
		log.Printf("%s listening on port %s", cfg.App.Name, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
