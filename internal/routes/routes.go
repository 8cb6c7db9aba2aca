package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/config"
	"github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/logger"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/notification"
	"github.com/BruksfildServices01/salon-pos/internal/store"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
	ucBackup "github.com/BruksfildServices01/salon-pos/internal/usecase/backup"
	ucBill "github.com/BruksfildServices01/salon-pos/internal/usecase/bill"
	ucBooking "github.com/BruksfildServices01/salon-pos/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/salon-pos/internal/usecase/catalog"
	ucCustomer "github.com/BruksfildServices01/salon-pos/internal/usecase/customer"
	ucReport "github.com/BruksfildServices01/salon-pos/internal/usecase/report"
)

// Deps is what the HTTP layer needs from main. DB and Archiver are optional.
type Deps struct {
	Config   *config.Config
	Store    store.Store
	DB       *gorm.DB
	Logger   *zap.Logger
	Archiver ucBackup.Archiver
	Now      func() time.Time
}

// App exposes the long-lived pieces main has to start and stop.
type App struct {
	Engine *notification.Engine
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) *App {
	cfg := d.Config
	log := logger.OrNop(d.Logger)
	ctx := context.Background()

	loc := timezone.Location(cfg.Timezone)
	now := d.Now
	if now == nil {
		now = timezone.Clock(loc)
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	newest := infraRepo.Options{Prepend: true, Logger: log, Now: now}
	ordered := infraRepo.Options{Logger: log, Now: now}

	billRepo := infraRepo.NewCollection[models.Bill](ctx, d.Store, store.KeyBills, newest)
	bookingRepo := infraRepo.NewCollection[models.Booking](ctx, d.Store, store.KeyBookings, newest)
	customerRepo := infraRepo.NewCollection[models.Customer](ctx, d.Store, store.KeyCustomers, newest)
	serviceRepo := infraRepo.NewCollection[models.PredefinedService](ctx, d.Store, store.KeyServices, ordered)
	categoryRepo := infraRepo.NewCollection[models.ServiceCategory](ctx, d.Store, store.KeyCategories, ordered)
	settingsRepo := infraRepo.NewSettingsRepository(ctx, d.Store, log)

	auditLogger := audit.New(d.DB, log)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	policy := booking.Policy{
		PollInterval:  cfg.DuePollInterval,
		CatchUpWindow: cfg.DueCatchUpWindow,
		PastTolerance: cfg.BookingPastTolerance,
		DefaultSnooze: cfg.DefaultSnooze,
	}

	ledger := notification.NewLedger(ctx, d.Store, log)
	engine := notification.NewEngine(bookingRepo, billRepo, ledger, policy, notification.Options{
		Now:    now,
		Logger: log,
		Audit:  auditDispatcher,
	})

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	listBillsUC := ucBill.NewListBills(billRepo, loc, now)
	createBillUC := ucBill.NewCreateBill(billRepo, serviceRepo, auditDispatcher, now)
	updateBillUC := ucBill.NewUpdateBill(billRepo, serviceRepo, auditDispatcher, now)
	deleteBillUC := ucBill.NewDeleteBill(billRepo, auditDispatcher)
	restoreBillsUC := ucBill.NewRestoreBills(billRepo, auditDispatcher)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, serviceRepo, policy, auditDispatcher, now)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, serviceRepo, engine, policy, auditDispatcher, now)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, engine, auditDispatcher)

	servicesUC := ucCatalog.NewServices(serviceRepo, categoryRepo, auditDispatcher, now)
	categoriesUC := ucCatalog.NewCategories(categoryRepo, serviceRepo, auditDispatcher)
	customersUC := ucCustomer.NewCustomers(customerRepo, billRepo, auditDispatcher)
	reportsUC := ucReport.NewReports(billRepo, loc)

	backupUC := ucBackup.New(ucBackup.Deps{
		Bills:      billRepo,
		Services:   serviceRepo,
		Categories: categoryRepo,
		Bookings:   bookingRepo,
		Customers:  customerRepo,
		Settings:   settingsRepo,
		Engine:     engine,
		Archiver:   d.Archiver,
		Audit:      auditDispatcher,
		Location:   loc,
		Now:        now,
	})

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, now)

	billHandler := handlers.NewBillHandler(
		listBillsUC,
		createBillUC,
		updateBillUC,
		deleteBillUC,
		restoreBillsUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
	)

	serviceHandler := handlers.NewServiceHandler(servicesUC)
	categoryHandler := handlers.NewCategoryHandler(categoriesUC)
	customerHandler := handlers.NewCustomerHandler(customersUC)
	reportHandler := handlers.NewReportHandler(reportsUC, now)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo, auditDispatcher)
	dueHandler := handlers.NewDueHandler(engine)
	backupHandler := handlers.NewBackupHandler(backupUC)

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ======================================================
	// 🔓 AUTH
	// ======================================================
	api.POST("/auth/login", authHandler.Login)

	// ======================================================
	// 🔐 SECURED
	// ======================================================
	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg, now))

	// Bills
	secured.GET("/bills", billHandler.List)
	secured.GET("/bills/grouped", billHandler.Grouped)
	secured.POST("/bills", billHandler.Create)
	secured.PUT("/bills/:id", billHandler.Update)
	secured.DELETE("/bills/:id", billHandler.Delete)
	secured.POST("/bills/restore", billHandler.Restore)

	// Bookings
	secured.GET("/bookings", bookingHandler.List)
	secured.POST("/bookings", bookingHandler.Create)
	secured.PUT("/bookings/:id", bookingHandler.Update)
	secured.DELETE("/bookings/:id", bookingHandler.Delete)

	// Catalog
	secured.GET("/services", serviceHandler.List)
	secured.GET("/services/:id", serviceHandler.Get)
	secured.POST("/services", serviceHandler.Create)
	secured.PUT("/services/:id", serviceHandler.Update)
	secured.DELETE("/services/:id", serviceHandler.Delete)

	secured.GET("/categories", categoryHandler.List)
	secured.POST("/categories", categoryHandler.Create)
	secured.POST("/categories/reorder", categoryHandler.Reorder)
	secured.PUT("/categories/:id", categoryHandler.Rename)
	secured.DELETE("/categories/:id", categoryHandler.Delete)

	// Customers
	secured.GET("/customers", customerHandler.List)
	secured.GET("/customers/stats", customerHandler.Stats)
	secured.GET("/customers/:id", customerHandler.Get)
	secured.POST("/customers", customerHandler.Create)
	secured.PUT("/customers/:id", customerHandler.Update)
	secured.DELETE("/customers/:id", customerHandler.Delete)

	// Reports
	secured.GET("/reports/revenue", reportHandler.Revenue)
	secured.GET("/reports/series", reportHandler.Series)
	secured.GET("/reports/top-services", reportHandler.TopServices)

	// Settings
	secured.GET("/settings", settingsHandler.Get)
	secured.PUT("/settings", settingsHandler.Update)

	// Due notifications
	secured.GET("/due", dueHandler.Get)
	secured.POST("/due/poll", dueHandler.Poll)
	secured.POST("/due/confirm", dueHandler.Confirm)
	secured.POST("/due/keep", dueHandler.Keep)
	secured.POST("/due/snooze", dueHandler.Snooze)
	secured.POST("/due/delete", dueHandler.Delete)
	secured.POST("/due/select", dueHandler.Select)

	// Backup
	secured.GET("/backup/export", backupHandler.Export)
	secured.POST("/backup/import", backupHandler.Import)
	secured.POST("/backup/archive", backupHandler.Archive)

	// Audit
	if d.DB != nil {
		auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, loc)
		secured.GET("/audit-logs", auditLogsHandler.List)
	}

	return &App{Engine: engine, Audit: auditDispatcher}
}
