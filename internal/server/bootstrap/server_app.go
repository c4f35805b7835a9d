package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	authapp "github.com/digivend/credit-shop/internal/auth/application"
	authdomain "github.com/digivend/credit-shop/internal/auth/domain"
	authpg "github.com/digivend/credit-shop/internal/auth/infrastructure/postgres"
	"github.com/digivend/credit-shop/internal/pkg/database"
	"github.com/digivend/credit-shop/internal/pkg/jwt"
	"github.com/digivend/credit-shop/internal/pkg/logging"
	httpwrap "github.com/digivend/credit-shop/internal/server/http"
	shopapp "github.com/digivend/credit-shop/internal/shop/application"
	shoppg "github.com/digivend/credit-shop/internal/shop/infrastructure/postgres"
	"github.com/digivend/credit-shop/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second

	migrationsDir    = "."
	migrationsDriver = "pgx"
	gooseDialect     = "postgres"
)

type ServerApp struct {
	cfg    ServerConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewServerApp(cfg ServerConfig, logger logging.Logger) *ServerApp {
	return &ServerApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *ServerApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.dbpool = dbpool

	if err := database.MigrateDatabase(dbURL, migrations.FS, migrationsDir, migrationsDriver, gooseDialect); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	txManager := database.NewDelegateTxManager(dbpool, logger)

	usersRepository := authpg.NewUsersRepository()
	authCase := authapp.NewAuthCase(dbpool, txManager, usersRepository, authdomain.NewArgonPasswordHasher(), jwt.NewJWTTokenIssuer(), a.cfg.JwtSecret)
	authHandler := httpwrap.NewAuthHandler(authCase)

	itemsRepository := shoppg.NewItemsRepository(dbpool)
	catalogCase := shopapp.NewCatalogCase(itemsRepository)

	purchaseCoordinator := shoppg.NewPurchaseCoordinator(dbpool, logger)
	purchaseCase := shopapp.NewPurchaseCase(purchaseCoordinator)

	accountFetcher := shoppg.NewAccountFetcher(dbpool, logger)
	accountCase := shopapp.NewAccountCase(accountFetcher)

	shopHandler := httpwrap.NewShopHandler(catalogCase, purchaseCase, accountCase)

	secretKey := []byte(a.cfg.JwtSecret)

	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/items", shopHandler.ListItems)

		authenticated := api.Group("/", httpwrap.NewAuthMiddleware(jwt.NewJWTTokenParser(), secretKey))
		{
			authenticated.POST("/items/purchase", shopHandler.Purchase)
			authenticated.GET("/me", shopHandler.GetAccount)

			admin := authenticated.Group("/", httpwrap.NewAdminMiddleware())
			{
				admin.POST("/items", shopHandler.CreateItem)
			}
		}
	}

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", a.cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *ServerApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}

		a.logger.Info("http server stopped")
	}

	// the pool may exist even when startup failed before the server was built
	if a.dbpool != nil {
		a.dbpool.Close()
	}
}
