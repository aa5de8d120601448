package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lostpaws/petfinder-api/internal/audit"
	"github.com/lostpaws/petfinder-api/internal/config"
	"github.com/lostpaws/petfinder-api/internal/handlers"
	infraRepo "github.com/lostpaws/petfinder-api/internal/infra/repository"
	"github.com/lostpaws/petfinder-api/internal/middleware"
	"github.com/lostpaws/petfinder-api/internal/storage"
	ucReport "github.com/lostpaws/petfinder-api/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reportRepo := infraRepo.NewReportGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// Photo storage is optional at boot; creating reports without a
	// photo still works when it is absent.
	var photoStorage storage.PhotoStorage
	if s3, err := storage.NewS3Storage(cfg); err != nil {
		log.Printf("photo storage disabled: %v", err)
	} else {
		photoStorage = s3
	}

	// ======================================================
	// USE CASES — REPORTS
	// ======================================================
	createReportUC := ucReport.NewCreateReport(reportRepo, userRepo, auditDispatcher)
	listReportsUC := ucReport.NewListReports(reportRepo)
	listMyReportsUC := ucReport.NewListMyReports(reportRepo)
	getReportUC := ucReport.NewGetReport(reportRepo)
	getSummaryUC := ucReport.NewGetSummary(reportRepo)
	updateStatusUC := ucReport.NewUpdateReportStatus(reportRepo, auditDispatcher)
	updateDetailsUC := ucReport.NewUpdateReportDetails(reportRepo, auditDispatcher)
	removeReportUC := ucReport.NewRemoveReport(reportRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	meHandler := handlers.NewMeHandler(userRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	reportHandler := handlers.NewReportHandler(
		createReportUC,
		listReportsUC,
		listMyReportsUC,
		getReportUC,
		getSummaryUC,
		updateStatusUC,
		updateDetailsUC,
		removeReportUC,
		photoStorage,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC REPORTS
		// ------------------------------
		api.GET("/reports", reportHandler.List)
		api.GET("/reports/summary", reportHandler.Summary)
		api.GET("/reports/:id", reportHandler.GetByID)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/reports/mine", reportHandler.ListMine)
			secured.POST("/reports", reportHandler.Create)
			secured.PATCH("/reports/:id/status", reportHandler.UpdateStatus)
			secured.PATCH("/reports/:id", reportHandler.UpdateDetails)
			secured.DELETE("/reports/:id", reportHandler.Remove)

			secured.GET("/admin/audit-logs", auditLogsHandler.List)
		}
	}
}
