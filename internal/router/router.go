package router

import (
	"net/http"
	"net/url"
	"time"

	"reddybook/config"
	"reddybook/internal/handler"
	"reddybook/internal/intake"
	"reddybook/internal/middleware"
	"reddybook/internal/repository"
	"reddybook/internal/service"
	"reddybook/internal/session"
	"reddybook/pkg/blob"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the infrastructure pieces the API is built on.
type Deps struct {
	DB       *gorm.DB
	Blobs    blob.Store
	Sessions session.Store
	Mailer   service.Mailer
	Logger   *zap.Logger
	// Limiter throttles public routes. The caller owns it and stops it on shutdown.
	Limiter *middleware.IPRateLimiter
}

// NewLimiter builds the public-route limiter from server.rate_limit (30/min when unset).
func NewLimiter(cfg *config.Config) *middleware.IPRateLimiter {
	limit := cfg.Server.RateLimit
	if limit <= 0 {
		limit = 30
	}
	return middleware.NewIPRateLimiter(limit, time.Minute)
}

func Setup(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := deps.Logger
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Repositories
	settingRepo := repository.NewSettingRepository(deps.DB)
	siteRepo := repository.NewSiteRepository(deps.DB)
	submissionRepo := repository.NewSubmissionRepository(deps.DB)
	adminRepo := repository.NewAdminRepository(deps.DB)
	identityRepo := repository.NewIdentityRepository(deps.DB)

	// Services
	identitySvc := service.NewIdentityService(&cfg.JWT, identityRepo, deps.Sessions, deps.Mailer, logger)
	directorySvc := service.NewAdminDirectoryService(identitySvc, adminRepo)
	settingSvc := service.NewSettingService(settingRepo)
	siteSvc := service.NewSiteService(siteRepo, deps.Blobs)
	submissionSvc := service.NewSubmissionService(submissionRepo, &cfg.Intake)
	intakeSvc := intake.NewService(siteSvc, submissionSvc, settingSvc, cfg.Intake.CountryCode, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(identitySvc, cfg.Server.SignInURL(), logger)
	intakeHandler := handler.NewIntakeHandler(intakeSvc, logger)
	siteHandler := handler.NewSiteHandler(siteSvc, logger)
	submissionHandler := handler.NewSubmissionHandler(submissionSvc, cfg.Intake.Location(), logger)
	adminHandler := handler.NewAdminHandler(directorySvc, cfg.Server.SignInURL(), logger)
	settingHandler := handler.NewSettingHandler(settingSvc, logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if local, ok := deps.Blobs.(*blob.LocalStore); ok {
		r.Static(localMountPath(cfg.Blob.LocalBaseURL), local.Dir())
	}

	limiter := deps.Limiter

	api := r.Group("/api/v1")

	pub := api.Group("/intake", middleware.RateLimit(limiter))
	{
		pub.GET("/sites", intakeHandler.Sites)
		pub.POST("/name", intakeHandler.Name)
		pub.POST("/mobile", intakeHandler.Mobile)
		pub.POST("/back", intakeHandler.Back)
		pub.POST("/submit", intakeHandler.Submit)
	}

	authRequired := middleware.AuthRequired(identitySvc, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/sign-up", middleware.RateLimit(limiter), authHandler.SignUp)
		authGroup.POST("/sign-in", middleware.RateLimit(limiter), authHandler.SignIn)
		authGroup.POST("/sign-out", authRequired, authHandler.SignOut)
		authGroup.GET("/session", authRequired, authHandler.Session)
	}

	admin := api.Group("/admin", authRequired, middleware.AdminRequired(directorySvc, logger))
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.GET("/sites", siteHandler.List)
		admin.POST("/sites", siteHandler.Create)
		admin.POST("/sites/logo", siteHandler.UploadLogo)
		admin.PUT("/sites/:id", siteHandler.Update)
		admin.PATCH("/sites/:id/active", siteHandler.SetActive)
		admin.DELETE("/sites/:id", siteHandler.Delete)

		admin.GET("/submissions", submissionHandler.List)
		admin.GET("/submissions/export.csv", submissionHandler.ExportCSV)
		admin.GET("/submissions/export.xlsx", submissionHandler.ExportXLSX)
		admin.DELETE("/submissions", submissionHandler.BulkDelete)
		admin.PATCH("/submissions/:id/status", submissionHandler.ToggleStatus)
		admin.GET("/submissions/:id/whatsapp", submissionHandler.ContactLink)

		admin.GET("/admins", adminHandler.List)
		admin.POST("/admins", adminHandler.Create)
		admin.GET("/admins/orphans", adminHandler.Orphans)
		admin.DELETE("/admins/:id", adminHandler.Delete)

		admin.GET("/settings", settingHandler.List)
		admin.GET("/settings/whatsapp", settingHandler.GetWhatsApp)
		admin.PUT("/settings/whatsapp", settingHandler.UpdateWhatsApp)
	}

	return r
}

// localMountPath is the URL path local uploads are served from.
func localMountPath(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Path == "" {
		return "/uploads"
	}
	return u.Path
}
