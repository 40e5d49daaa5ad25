package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Mhany156/telegram-bot/internal/pkg/database"
	"github.com/Mhany156/telegram-bot/internal/pkg/logging"
	"github.com/Mhany156/telegram-bot/internal/shop/application"
	"github.com/Mhany156/telegram-bot/internal/shop/bot"
	httpwrap "github.com/Mhany156/telegram-bot/internal/shop/infrastructure/http"
	"github.com/Mhany156/telegram-bot/internal/shop/infrastructure/postgres"
	"github.com/Mhany156/telegram-bot/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second

	migrationsDir     = "."
	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

type ShopApp struct {
	cfg    ShopConfig
	logger logging.Logger
}

func NewShopApp(cfg ShopConfig, logger logging.Logger) *ShopApp {
	return &ShopApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *ShopApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, migrations.Embed, migrationsDir, migrationsDriver, migrationsDialect)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbpool.Close()

	txManager := database.NewDelegateTxManager(dbpool)

	balancesRepository := postgres.NewBalancesRepository(dbpool)
	stockRepository := postgres.NewStockRepository(dbpool)
	ordersRepository := postgres.NewOrdersRepository(dbpool)
	instructionsRepository := postgres.NewInstructionsRepository(dbpool)
	purchaseHandler := postgres.NewPurchaseHandler(txManager)

	balanceCase := application.NewBalanceCase(balancesRepository)
	creditCase := application.NewCreditCase(balancesRepository)
	stockCase := application.NewStockCase(stockRepository)
	purchaseCase := application.NewPurchaseCase(purchaseHandler, instructionsRepository)
	historyCase := application.NewHistoryCase(ordersRepository)
	instructionsCase := application.NewInstructionsCase(instructionsRepository)

	dispatcher := bot.NewDispatcher(
		balanceCase,
		creditCase,
		stockCase,
		purchaseCase,
		historyCase,
		instructionsCase,
		newAdminChecker(a.cfg.AdminIds),
		logger,
	)

	updateHandler := httpwrap.NewUpdateHandler(dispatcher)
	router := httpwrap.NewRouter(updateHandler, a.cfg.BotSecret, logger)

	server := &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newAdminChecker(adminIds []int64) bot.AdminChecker {
	admins := make(map[int64]struct{}, len(adminIds))
	for _, id := range adminIds {
		admins[id] = struct{}{}
	}

	return func(userId int64) bool {
		_, ok := admins[userId]
		return ok
	}
}
