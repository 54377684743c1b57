// File: brilho/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brilho/config"
	"brilho/cron"
	"brilho/database"
	collaboratorRepo "brilho/database/repository/collaborator"
	serviceRepo "brilho/database/repository/service"
	settingsRepo "brilho/database/repository/settings"
	transactionRepo "brilho/database/repository/transaction"
	"brilho/handlers"
	"brilho/middleware"
	"brilho/routes"
	"brilho/services/ledger"
	"brilho/services/lifecycle"
	"brilho/services/notification"
	"brilho/services/settings"
	"brilho/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo()
	txnRepo := transactionRepo.NewMongoTransactionRepo()
	collabRepo := collaboratorRepo.NewMongoCollaboratorRepo()
	setRepo := settingsRepo.NewMongoSettingsRepo()

	// services.
	settingsService := &settings.DefaultSettingsService{
		Repo:   setRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	ledgerService := &ledger.DefaultLedgerService{
		Repo:   txnRepo,
		Logger: logger,
	}

	settlementProcessor := &lifecycle.SettlementProcessor{
		Services:      svcRepo,
		Collaborators: collabRepo,
		Ledger:        txnRepo,
		Settings:      settingsService,
		Logger:        logger,
	}

	settlementClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSettlementQueueDB,
	})
	defer settlementClient.Close()

	lifecycleService := &lifecycle.DefaultLifecycleService{
		Repo:          svcRepo,
		Collaborators: collabRepo,
		Dispatcher:    &lifecycle.QueueSettlementDispatcher{Client: settlementClient},
		Events:        notification.NewLogEventSink(logger),
		Logger:        logger,
	}

	// Settlement worker consuming the intent queue.
	cron.InitSettlementWorker(settlementProcessor)

	serviceHandler := handlers.NewServiceHandler(lifecycleService, logger)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)
	collaboratorHandler := handlers.NewCollaboratorHandler(collabRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateService:        serviceHandler.CreateServiceHandler,
		ListServices:         serviceHandler.ListServicesHandler,
		GetService:           serviceHandler.GetServiceHandler,
		TransitionService:    serviceHandler.TransitionServiceHandler,
		BudgetService:        serviceHandler.BudgetServiceHandler,
		ApproveBudget:        serviceHandler.ApproveBudgetHandler,
		RejectBudget:         serviceHandler.RejectBudgetHandler,
		ConfirmSignalPayment: serviceHandler.ConfirmSignalPaymentHandler,
		ConfirmFinalPayment:  serviceHandler.ConfirmFinalPaymentHandler,
		AssignCollaborator:   serviceHandler.AssignCollaboratorHandler,
		CheckIn:              serviceHandler.CheckInHandler,
		CompleteService:      serviceHandler.CompleteServiceHandler,
		CancelService:        serviceHandler.CancelServiceHandler,

		ListTransactions:    ledgerHandler.ListTransactionsHandler,
		CreateTransaction:   ledgerHandler.CreateTransactionHandler,
		MarkTransactionPaid: ledgerHandler.MarkTransactionPaidHandler,
		DeleteTransaction:   ledgerHandler.DeleteTransactionHandler,

		GetSettings:    settingsHandler.GetSettingsHandler,
		UpdateSettings: settingsHandler.UpdateSettingsHandler,

		ListCollaborators:  collaboratorHandler.ListCollaboratorsHandler,
		GetCollaborator:    collaboratorHandler.GetCollaboratorHandler,
		UpsertCollaborator: collaboratorHandler.UpsertCollaboratorHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
