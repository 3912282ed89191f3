package main

import (
	"net/http"

	_ "github.com/Towhid-Raiyan/college-selector-server/docs" // swagger spec

	"github.com/Towhid-Raiyan/college-selector-server/internal/cache"
	"github.com/Towhid-Raiyan/college-selector-server/internal/config"
	"github.com/Towhid-Raiyan/college-selector-server/internal/db"
	"github.com/Towhid-Raiyan/college-selector-server/internal/handler"
	"github.com/Towhid-Raiyan/college-selector-server/internal/logger"
	"github.com/Towhid-Raiyan/college-selector-server/internal/repository"
	"github.com/Towhid-Raiyan/college-selector-server/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title College Selector API
// @version 1.0
// @description Token issuance, user/student registration and the college catalog.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Ensure()

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal("invalid configuration", zap.Error(err))
	}

	// The Mongo client lives for the whole process and is never closed:
	// the deployment relies on host-level shutdown to release it.
	database, err := db.Connect(cfg)
	if err != nil {
		logger.Logger.Fatal("failed connecting to MongoDB", zap.Error(err))
	}
	logger.Logger.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))

	if err := cache.Init(cfg); err != nil {
		logger.Logger.Fatal("failed connecting to Redis", zap.Error(err))
	}
	if cache.Enabled() {
		logger.Logger.Info("catalog cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	// repos
	userRepo := repository.NewUserRepository(database)
	studentRepo := repository.NewStudentRepository(database)
	collegeRepo := repository.NewCollegeRepository(database)

	// services
	tokenSvc := service.NewTokenService(cfg.JWTSecret)
	regSvc := service.NewRegistrationService(userRepo, studentRepo)
	catalogSvc := service.NewCatalogService(collegeRepo)

	// handlers
	authH := handler.NewAuthHandler(tokenSvc)
	regH := handler.NewRegistrationHandler(regSvc)
	collegeH := handler.NewCollegeHandler(catalogSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type", "Origin", "X-Requested-With", "Accept",
			"x-client-key", "x-client-token", "x-client-secret", "Authorization",
		},
		AllowCredentials: true,
	}))

	r.Get("/", handler.Health)

	r.Post("/jwt", authH.IssueToken)
	r.Post("/users", regH.RegisterUser)
	r.Post("/student", regH.RegisterStudent)

	r.Get("/allCollege", collegeH.All)
	r.Get("/popularCollege", collegeH.Popular)
	r.Get("/allCollege/{id}", collegeH.ByID)

	r.Group(func(r chi.Router) {
		r.Use(handler.RequireJWT(tokenSvc))
		r.Get("/me", authH.Me)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	logger.Logger.Info("listening", zap.String("port", cfg.HTTPPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, r); err != nil {
		logger.Logger.Fatal("server stopped", zap.Error(err))
	}
}
