package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/security"
	ucAuth "github.com/BruksfildServices01/salon-scheduler/internal/usecase/auth"
	ucBranch "github.com/BruksfildServices01/salon-scheduler/internal/usecase/branch"
	ucClient "github.com/BruksfildServices01/salon-scheduler/internal/usecase/client"
	ucOffering "github.com/BruksfildServices01/salon-scheduler/internal/usecase/offering"
	ucUpload "github.com/BruksfildServices01/salon-scheduler/internal/usecase/upload"
	ucUser "github.com/BruksfildServices01/salon-scheduler/internal/usecase/user"
	ucUserPhoto "github.com/BruksfildServices01/salon-scheduler/internal/usecase/userphoto"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type Deps struct {
	DB     *gorm.DB
	Tokens *security.TokenService

	// Store receives uploads. Signer issues read URLs and may be a cached
	// wrapper around Store.
	Store  storage.Store
	Signer storage.Signer

	Audit     audit.Recorder
	AuditLogs *audit.Logger

	AllowedOrigins   []string
	CheckEmailDomain bool

	// StaticDir is served under StaticBase when uploads live on disk.
	StaticDir  string
	StaticBase string
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	if err := validators.Register(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.AllowedOrigins))

	recorder := d.Audit
	if recorder == nil {
		recorder = audit.Nop{}
	}

	signer := d.Signer
	if signer == nil {
		signer = d.Store
	}

	// ======================================================
	// REPOSITORIES
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	branchRepo := infraRepo.NewBranchGormRepository(d.DB)
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	photoRepo := infraRepo.NewUserPhotoGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	userUC := ucUser.NewService(userRepo, recorder, d.CheckEmailDomain)
	offeringUC := ucOffering.NewService(serviceRepo, userUC, recorder)
	branchUC := ucBranch.NewService(branchRepo, userUC, offeringUC, recorder)
	clientUC := ucClient.NewService(clientRepo, branchUC, recorder)
	uploadUC := ucUpload.NewService(d.Store)
	photoUC := ucUserPhoto.NewService(photoRepo, userUC, uploadUC, signer, recorder)
	signInUC := ucAuth.NewSignIn(userUC, d.Tokens)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signInUC)
	meHandler := handlers.NewMeHandler(userUC)
	userHandler := handlers.NewUserHandler(userUC)
	branchHandler := handlers.NewBranchHandler(branchUC)
	clientHandler := handlers.NewClientHandler(clientUC)
	serviceHandler := handlers.NewServiceHandler(offeringUC)
	photoHandler := handlers.NewUserPhotoHandler(photoUC)
	uploadHandler := handlers.NewUploadHandler(uploadUC)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.StaticDir != "" && d.StaticBase != "" {
		r.Static(d.StaticBase, d.StaticDir)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/user", userHandler.Create)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(d.Tokens))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/user", userHandler.List)
			secured.GET("/user/paginate", userHandler.Paginate)
			secured.GET("/user/email/:email", userHandler.GetByEmail)
			secured.GET("/user/:id", userHandler.Get)
			secured.PUT("/user/:id", userHandler.Update)
			secured.DELETE("/user/:id", userHandler.Delete)

			secured.GET("/branchs", branchHandler.List)
			secured.GET("/branchs/paginate", branchHandler.Paginate)
			secured.GET("/branchs/:id", branchHandler.Get)
			secured.POST("/branchs", branchHandler.Create)
			secured.PUT("/branchs/:id", branchHandler.Update)
			secured.DELETE("/branchs/:id", branchHandler.Delete)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/paginate", clientHandler.Paginate)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/paginate", serviceHandler.Paginate)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/user-photo", photoHandler.List)
			secured.GET("/user-photo/paginate", photoHandler.Paginate)
			secured.GET("/user-photo/:id", photoHandler.Get)
			secured.POST("/user-photo", photoHandler.Create)
			secured.PUT("/user-photo/:id", photoHandler.Update)
			secured.DELETE("/user-photo/:id", photoHandler.Delete)

			secured.POST("/upload/photo", uploadHandler.Photo)
			secured.POST("/upload/photo/bulk", uploadHandler.Bulk)

			if d.AuditLogs != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)
				secured.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return nil
}
