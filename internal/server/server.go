package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskcherry/internal/config"
	"taskcherry/internal/handler"
	"taskcherry/internal/middleware"
	"taskcherry/internal/model"
	"taskcherry/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Board{},
		&model.Column{},
		&model.Card{},
		&model.Widget{},
		&model.UserSettings{},
		&model.Report{},
	); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	cardRepo := repository.NewCardRepository(db)
	widgetRepo := repository.NewWidgetRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	boardHandler := handler.NewBoardHandler(boardRepo)
	columnHandler := handler.NewColumnHandler(columnRepo, cardRepo, boardRepo)
	cardHandler := handler.NewCardHandler(cardRepo, columnRepo, boardRepo)
	widgetHandler := handler.NewWidgetHandler(widgetRepo, cardRepo, columnRepo, boardRepo)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)
	reportHandler := handler.NewReportHandler(reportRepo, boardRepo, columnRepo, cardRepo, widgetRepo, settingsRepo)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Board routes
		authorized.POST("/boards", boardHandler.Create)
		authorized.GET("/boards", boardHandler.GetAll)
		authorized.GET("/boards/:id", boardHandler.GetByID)
		authorized.PUT("/boards/:id", boardHandler.Update)
		authorized.DELETE("/boards/:id", boardHandler.Delete)
		authorized.POST("/boards/:id/move", boardHandler.Move)

		// Column routes
		authorized.POST("/columns", columnHandler.Create)
		authorized.GET("/boards/:id/columns", columnHandler.GetAll)
		authorized.GET("/columns/:id", columnHandler.GetByID)
		authorized.GET("/columns/:id/cards", columnHandler.GetCards)
		authorized.PUT("/columns/:id", columnHandler.Update)
		authorized.DELETE("/columns/:id", columnHandler.Delete)
		authorized.POST("/columns/:id/move", columnHandler.Move)

		// Card routes
		authorized.POST("/cards", cardHandler.Create)
		authorized.GET("/boards/:id/cards", cardHandler.GetByBoard)
		authorized.GET("/cards/:id", cardHandler.GetByID)
		authorized.PUT("/cards/:id", cardHandler.Update)
		authorized.DELETE("/cards/:id", cardHandler.Delete)
		authorized.POST("/cards/:id/move", cardHandler.Move)

		// Widget and dashboard routes
		authorized.POST("/widgets", widgetHandler.Create)
		authorized.GET("/boards/:id/widgets", widgetHandler.GetByBoard)
		authorized.GET("/boards/:id/dashboard", widgetHandler.Dashboard)
		authorized.PUT("/widgets/:id", widgetHandler.Update)
		authorized.DELETE("/widgets/:id", widgetHandler.Delete)
		authorized.POST("/widgets/:id/move", widgetHandler.Move)

		// Settings routes
		authorized.GET("/settings", settingsHandler.Get)
		authorized.PUT("/settings", settingsHandler.Update)

		// Report routes
		authorized.POST("/reports", reportHandler.Create)
		authorized.GET("/reports", reportHandler.GetAll)
		authorized.GET("/reports/:id", reportHandler.GetByID)
		authorized.DELETE("/reports/:id", reportHandler.Delete)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   s.Config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: corsHandler.Handler(s.Engine),
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
