package bootstrap

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/InternFinder-SIH/internfinder-backend/config"
	httpapi "github.com/InternFinder-SIH/internfinder-backend/internal/api/http"
	"github.com/InternFinder-SIH/internfinder-backend/internal/api/http/middleware"
	apphttp "github.com/InternFinder-SIH/internfinder-backend/internal/applications/http"
	apprepo "github.com/InternFinder-SIH/internfinder-backend/internal/applications/repository"
	appservice "github.com/InternFinder-SIH/internfinder-backend/internal/applications/service"
	"github.com/InternFinder-SIH/internfinder-backend/internal/auth"
	authhttp "github.com/InternFinder-SIH/internfinder-backend/internal/auth/http"
	authservice "github.com/InternFinder-SIH/internfinder-backend/internal/auth/service"
	"github.com/InternFinder-SIH/internfinder-backend/internal/internships"
	"github.com/InternFinder-SIH/internfinder-backend/internal/ml"
	"github.com/InternFinder-SIH/internfinder-backend/internal/recommendations"
	"github.com/InternFinder-SIH/internfinder-backend/internal/resume"
	"github.com/InternFinder-SIH/internfinder-backend/internal/users"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	DB          *sql.DB
	Redis       *redis.Client
	Firebase    *FirebaseClients
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(dep.Cfg.App.CORSOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RequestID())

	userRepo := users.NewRepo(dep.DB)
	authSvc := authservice.New(
		userRepo,
		dep.Firebase.Auth,
		[]byte(dep.Cfg.Auth.JWTSecret),
		dep.Cfg.Auth.TokenTTL,
		dep.Cfg.Auth.BcryptCost,
	)

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(rate.Limit(5), 10))
	authhttp.New(authSvc).Register(authGroup)

	catalogRepo := internships.NewRepo(dep.Firebase.RTDB)
	catalogCache := internships.NewCache(dep.Redis)
	internships.Register(api.Group("/internships"), catalogRepo, catalogCache)

	protected := api.Group("")
	if dep.Cfg.Auth.Disabled {
		protected.Use(auth.OptionalUser())
	} else {
		protected.Use(auth.RequireUser([]byte(dep.Cfg.Auth.JWTSecret)))
	}

	appRepo := apprepo.NewApplicationRepository(dep.Firebase.Firestore)
	appSvc := appservice.NewApplicationService(appRepo, dep.Redis)
	apphttp.Register(protected.Group("/applications"), appSvc)

	mlClient := ml.NewClient(dep.Cfg.ML.BaseURL)
	recSvc := recommendations.NewService(mlClient, catalogRepo, catalogCache)
	recommendations.Register(protected.Group("/recommendations"), recSvc)

	resumeSvc := resume.NewService(dep.Cfg.S3, mlClient)
	resume.Register(protected.Group("/resume"), resumeSvc)

	return r
}

func corsMiddleware(origins string) gin.HandlerFunc {
	if origins == "" || origins == "*" {
		cfg := cors.DefaultConfig()
		cfg.AllowAllOrigins = true
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-User-Id", "X-Request-Id")
		return cors.New(cfg)
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-User-Id", "X-Request-Id")
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
