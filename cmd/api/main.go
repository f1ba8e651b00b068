package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizbank/internal/config"
	"github.com/yourusername/quizbank/internal/handler"
	"github.com/yourusername/quizbank/internal/middleware"
	pgRepo "github.com/yourusername/quizbank/internal/repository/postgres"
	"github.com/yourusername/quizbank/internal/service"
	"github.com/yourusername/quizbank/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Redis опционален: без него маршруты записи работают без rate limiting
	var rateLimiter *middleware.RateLimiter
	if cfg.Redis.Configured() {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Println("Successfully connected to Redis")
		rateLimiter = middleware.NewRateLimiter(redisClient)
	} else {
		log.Println("Redis не сконфигурирован, rate limiting отключен")
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo)
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	questionHandler := handler.NewQuestionHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: API публичный, аутентификации нет
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.RequestID())

	// Единый формат тела ошибки и для маршрутизатора
	router.HandleMethodNotAllowed = true
	router.NoRoute(handler.NoRoute)
	router.NoMethod(handler.NoMethod)

	// Rate limiting для маршрутов записи
	writeLimit := func() gin.HandlerFunc {
		if rateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		limitCfg := middleware.DefaultWriteRateLimitConfig()
		if cfg.RateLimit.MaxRequests > 0 {
			limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
		}
		if cfg.RateLimit.WindowSec > 0 {
			limitCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
		}
		return rateLimiter.Limit(limitCfg)
	}()

	// Настраиваем маршруты API
	router.GET("/categories", categoryHandler.GetCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		categoryHandler.GetQuestionsByCategory)

	router.GET("/questions", questionHandler.ListQuestions)
	router.GET("/questions/export", questionHandler.ExportQuestions)
	router.POST("/questions", writeLimit, questionHandler.CreateQuestion)
	router.POST("/questions/bulk", writeLimit, questionHandler.BulkCreateQuestions)
	router.POST("/questions/search", questionHandler.SearchQuestions)
	router.DELETE("/questions/:id",
		writeLimit,
		middleware.ExtractUintParam("id", "questionID"),
		questionHandler.DeleteQuestion)

	router.POST("/quizzes", quizHandler.PlayQuiz)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
