package routes

import (
	"context"
	"net/http"
	"strconv"

	_ "traful_pagos/docs"
	"traful_pagos/internal/adapter/http/handlers"
	"traful_pagos/internal/adapter/persistence/repository"
	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/infrastructure/config"
	"traful_pagos/internal/infrastructure/database"
	"traful_pagos/internal/infrastructure/email"
	"traful_pagos/internal/infrastructure/locks"
	"traful_pagos/internal/infrastructure/logger"
	"traful_pagos/internal/infrastructure/payments"
	"traful_pagos/internal/infrastructure/receipts"
	"traful_pagos/internal/usecase"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PathAPI = "/api"

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("[startup] invalid configuration")
	}
	logg := logger.New(cfg.LogLevel)

	setMiddlewares(cfg, logg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app := buildApp(context.Background(), cfg, logg)
	getRoutes(app, cfg, logg)

	logg.WithField("port", cfg.Port).Info("[startup] listening")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logg.WithError(err).Fatal("Failed to startup the application")
	}
}

// app holds the handlers wired with every configured collaborator.
type app struct {
	search  *handlers.SearchHandler
	payment *handlers.PaymentHandler
	receipt *handlers.ReceiptHandler
	manual  *handlers.ManualCollectionHandler
	admin   *handlers.AdminHandler
}

// buildApp connects the external services. Unconfigured collaborators stay
// nil and the features that need them answer "not configured".
func buildApp(ctx context.Context, cfg config.Config, logg *logrus.Logger) app {
	var (
		fees        interfaces.IFeeRecordRepository
		history     interfaces.IPaymentHistoryRepository
		logs        interfaces.ILogRepository
		access      interfaces.IAccessLogRepository
		collections interfaces.IManualCollectionRepository
		ledger      interfaces.IProcessedPaymentRepository
		locker      interfaces.IRecordLocker
		gateway     interfaces.IPaymentGateway
		linkGateway interfaces.ILinkGateway
		renderer    interfaces.IReceiptRenderer
		sender      interfaces.IEmailSender
	)

	if cfg.AirtableConfigured() {
		client, err := database.ConnectAirtable(cfg.AirtablePAT, cfg.AirtableURL, logg)
		if err != nil {
			logg.WithError(err).Error("[startup] airtable not available")
		} else {
			t := cfg.Tables
			fees = repository.NewFeeRecordAirtableRepository(client, cfg.AirtableBaseID, map[entities.ItemType]string{
				entities.ItemTypeLote:         t.Contributivos,
				entities.ItemTypeVehiculo:     t.Patente,
				entities.ItemTypeDeudaGeneral: t.Deudas,
			})
			history = repository.NewPaymentHistoryAirtableRepository(client, cfg.AirtableBaseID, t.Historial)
			logs = repository.NewLogAirtableRepository(client, cfg.AirtableBaseID, t.Logs)
			access = repository.NewAccessLogAirtableRepository(client, cfg.AirtableBaseID, t.AccessLogs)
			collections = repository.NewManualCollectionAirtableRepository(client, cfg.AirtableBaseID, map[entities.ManualKind]string{
				entities.ManualKindRecaudacion:   t.Recaudacion,
				entities.ManualKindPatenteManual: t.PatenteManual,
				entities.ManualKindPlanPago:      t.PlanPago,
			})
		}
	} else {
		logg.Warn("[startup] AIRTABLE_PAT or AIRTABLE_BASE_ID missing, store disabled")
	}

	if cfg.LedgerConfigured() {
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.LedgerRegion(),
			Endpoint:        cfg.DynamoDB.Endpoint,
			AccessKeyID:     cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
		}, logg)
		if err != nil {
			logg.WithError(err).Warn("[startup] processed payments ledger disabled")
		} else {
			ledger = repository.NewProcessedPaymentDynamoRepository(ddb, cfg.ProcessedPaymentsTable)
		}
	}

	if cfg.RedisAddress != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisAddress, cfg.RedisPassword, logg)
		if err != nil {
			logg.WithError(err).Warn("[startup] record locks disabled")
		} else {
			locker = locks.NewRedisLocker(rdb, cfg.LockTTL, logg)
		}
	}

	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logg)
	if err != nil {
		logg.WithError(err).Warn("[startup] Mercado Pago gateway not configured")
	} else {
		gateway = mpGateway
	}

	if cfg.PaywayConfigured() {
		pw, err := payments.NewPaywayGateway(&http.Client{Timeout: cfg.PaywayTimeout}, cfg.PaywayBaseURL, cfg.PaywayPrivateKey, cfg.PaywaySiteID, logg)
		if err != nil {
			logg.WithError(err).Warn("[startup] Payway gateway not configured")
		} else {
			linkGateway = pw
		}
	}

	pdf, err := receipts.NewPDFRenderer(cfg.ReceiptTemplatePath, logg)
	if err != nil {
		logg.WithError(err).Warn("[startup] receipt renderer not available")
	} else {
		renderer = pdf
	}

	resend, err := email.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom, logg)
	if err != nil {
		logg.WithError(err).Warn("[startup] email delivery disabled")
	} else {
		sender = resend
	}

	urls := usecase.CheckoutURLs{FrontendURL: cfg.FrontendURL, BackendURL: cfg.BackendURL}
	audit := usecase.NewAuditLogger(logs, logg)

	searchUseCase := usecase.NewSearchUseCase(fees, logg)
	receiptUseCase := usecase.NewReceiptUseCase(history, renderer, sender, logg)
	checkoutUseCase := usecase.NewCheckoutUseCase(gateway, linkGateway, audit, urls, logg)
	reconciliationUseCase := usecase.NewReconciliationUseCase(usecase.ReconciliationDeps{
		Gateway:      gateway,
		Fees:         fees,
		History:      history,
		Manual:       collections,
		Ledger:       ledger,
		Locker:       locker,
		Receipts:     receiptUseCase,
		Audit:        audit,
		Logger:       logg,
		BackendURL:   cfg.BackendURL,
		DebugEnabled: cfg.DebugEndpointsEnabled,
	})
	manualUseCase := usecase.NewManualCollectionUseCase(collections, history, gateway, receiptUseCase, sender, audit, urls, logg)
	notificationUseCase := usecase.NewNotificationUseCase(sender, audit, urls, cfg.AdminNotificationEmail, logg)
	adminUseCase := usecase.NewAdminUseCase(history, logs, collections, access, audit, usecase.AdminCredentials{
		AdminPassword: cfg.AdminPassword,
		StatsPassword: cfg.StatsPassword,
	}, logg)

	return app{
		search:  handlers.NewSearchHandler(searchUseCase),
		payment: handlers.NewPaymentHandler(checkoutUseCase, reconciliationUseCase, urls, logg),
		receipt: handlers.NewReceiptHandler(receiptUseCase),
		manual:  handlers.NewManualCollectionHandler(manualUseCase, notificationUseCase),
		admin:   handlers.NewAdminHandler(adminUseCase),
	}
}

func getRoutes(a app, cfg config.Config, logg *logrus.Logger) {
	api := router.Group(PathAPI)
	addPingRoutes(api)
	addPaymentRoutes(api, a.search, a.payment, a.receipt)
	addManualCollectionRoutes(api, a.manual)
	addAdminRoutes(api, a.admin, loginRateLimit(cfg.AdminLoginRate, logg))
}

func setMiddlewares(cfg config.Config, logg *logrus.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logg.WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	c.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	c.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	c.AddExposeHeaders("Content-Length", "Content-Disposition")
	return c
}
