package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/employee-service/internal/api/http"
	"github.com/spec-kit/employee-service/internal/api/http/handlers"
	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/observability"
	"github.com/spec-kit/employee-service/internal/persistence"
	"github.com/spec-kit/employee-service/internal/repository"
	"github.com/spec-kit/employee-service/internal/scheduler"
	"github.com/spec-kit/employee-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	departmentRepo := repository.NewDepartmentRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	summaryRepo := repository.NewDailySummaryRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	txRunner := repository.NewTxRunner(pool)

	seeder := persistence.NewSeeder(cfg.Seed, accountRepo, departmentRepo, employeeRepo, logger)
	if err := seeder.Run(ctx); err != nil {
		logger.Fatal("failed to seed data", zap.Error(err))
	}

	departmentService := service.NewDepartmentService(service.DepartmentDependencies{
		DepartmentRepo: departmentRepo,
		EmployeeRepo:   employeeRepo,
		Tx:             txRunner,
		Logger:         logger,
	})
	employeeService := service.NewEmployeeService(service.EmployeeDependencies{
		EmployeeRepo:   employeeRepo,
		DepartmentRepo: departmentRepo,
		Tx:             txRunner,
		Logger:         logger,
	})
	summaryService := service.NewSummaryService(service.SummaryDependencies{
		DepartmentRepo: departmentRepo,
		EmployeeRepo:   employeeRepo,
		SummaryRepo:    summaryRepo,
		Logger:         logger,
	})

	metrics := observability.NewMetrics()

	summaryScheduler := scheduler.NewSummaryScheduler(cfg.Scheduler, summaryService, redis, metrics, logger)
	if err := summaryScheduler.Start(); err != nil {
		logger.Fatal("failed to start summary scheduler", zap.Error(err))
	}

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Departments: handlers.NewDepartmentsHandler(departmentService),
		Employees:   handlers.NewEmployeesHandler(employeeService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	summaryScheduler.Stop()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
