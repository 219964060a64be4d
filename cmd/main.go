package main

import (
	"context"
	"net/http"
	"time"

	"github.com/fundalabs/funda/config"
	"github.com/fundalabs/funda/database"
	_ "github.com/fundalabs/funda/docs" // Swagger docs - auto-generated
	"github.com/fundalabs/funda/internal/audio"
	adminctrl "github.com/fundalabs/funda/internal/controller/admin"
	userctrl "github.com/fundalabs/funda/internal/controller/user"
	"github.com/fundalabs/funda/internal/gateway"
	"github.com/fundalabs/funda/internal/logger"
	"github.com/fundalabs/funda/internal/model"
	"github.com/fundalabs/funda/internal/repository"
	"github.com/fundalabs/funda/internal/scheduler"
	"github.com/fundalabs/funda/internal/service"
	"github.com/fundalabs/funda/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Funda Language Learning API
// @version 1.0
// @description Lesson content, quiz session progression, learner points and streaks, and word audio delivery.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewLessonRepository,
			repository.NewQuestionRepository,
			repository.NewWordRepository,
			repository.NewLearnerRepository,
			repository.NewProgressRepository,
			repository.NewReportRepository,
			repository.NewResourceRepository,
			repository.NewSessionRecordRepository,
		),

		// Session Engine and Gateway
		fx.Provide(
			NewContentGateway,
			func(cfg *config.Config, gw gateway.ContentGateway) *session.Manager {
				return session.NewManager(gw, session.Scoring{
					CompletionPoints: cfg.Scoring.CompletionPoints,
					StreakBonus:      cfg.Scoring.StreakBonus,
					StreakThreshold:  cfg.Scoring.StreakThreshold,
				})
			},
			func(cfg *config.Config, resources repository.ResourceRepository) *audio.Resolver {
				return audio.NewResolver(cfg.Audio.LocalDir, cfg.Audio.RemoteBaseURL, resources)
			},
			audio.NewManager,
			func(manager *session.Manager, cfg *config.Config) *scheduler.Scheduler {
				return scheduler.New(manager, cfg.Session.TTL)
			},
		),

		// Services Layer
		fx.Provide(
			service.NewLessonService,
			service.NewSessionService,
			service.NewLearnerService,
			service.NewHintService,
			service.NewAdminLessonService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewLessonController,
			userctrl.NewSessionController,
			userctrl.NewLearnerController,
			userctrl.NewAudioController,
			adminctrl.NewAdminLessonController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartScheduler),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewContentGateway selects where lesson content and learner writes go.
// With UPSTREAM_BASE_URL set, content comes from a remote backend over
// HTTP; otherwise everything is served from the local database.
func NewContentGateway(
	cfg *config.Config,
	questionRepo repository.QuestionRepository,
	learnerRepo repository.LearnerRepository,
	progressRepo repository.ProgressRepository,
	reportRepo repository.ReportRepository,
) gateway.ContentGateway {
	if cfg.Upstream.BaseURL != "" {
		log.Info().Str("base_url", cfg.Upstream.BaseURL).Msg("Using remote content gateway")
		return gateway.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	}
	return gateway.NewLocalGateway(questionRepo, learnerRepo, progressRepo, reportRepo)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	lessonCtrl *userctrl.LessonController,
	sessionCtrl *userctrl.SessionController,
	learnerCtrl *userctrl.LearnerController,
	audioCtrl *userctrl.AudioController,
	adminCtrl *adminctrl.AdminLessonController,
	audioManager *audio.Manager,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/lessons", adminCtrl.CreateLesson)
		adminAPIGroup.POST("/lessons/import", adminCtrl.ImportLessons)
		adminAPIGroup.POST("/words", adminCtrl.CreateWord)
		adminAPIGroup.PUT("/units/:unit_id/resources", adminCtrl.SetUnitResource)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		// Lesson content
		userAPIGroup.GET("/lessons", lessonCtrl.GetAllLessons)
		userAPIGroup.GET("/lessons/:lesson_id", lessonCtrl.GetLessonDetails)
		userAPIGroup.GET("/language-questions/lesson/:lesson_id", lessonCtrl.GetLessonQuestions)

		// Quiz sessions
		userAPIGroup.POST("/lessons/:lesson_id/sessions", sessionCtrl.StartSession)
		userAPIGroup.GET("/sessions/:session_id", sessionCtrl.GetSession)
		userAPIGroup.POST("/sessions/:session_id/check", sessionCtrl.CheckAnswer)
		userAPIGroup.POST("/sessions/:session_id/continue", sessionCtrl.ContinueSession)
		userAPIGroup.POST("/sessions/:session_id/retry", sessionCtrl.RetrySession)
		userAPIGroup.POST("/sessions/:session_id/quit", sessionCtrl.QuitSession)
		userAPIGroup.POST("/sessions/:session_id/hint", sessionCtrl.GetHint)
		userAPIGroup.POST("/sessions/:session_id/playback", sessionCtrl.QueuePlayback)

		// Learner profile, points, progress
		userAPIGroup.GET("/language-learners/:learner_id", learnerCtrl.GetLearner)
		userAPIGroup.POST("/language-learners/:learner_id/increment-points", learnerCtrl.IncrementPoints)
		userAPIGroup.POST("/language-learners/:learner_id/progress", learnerCtrl.UpdateProgress)
		userAPIGroup.GET("/language-learners/:learner_id/progress", learnerCtrl.GetProgress)
		userAPIGroup.GET("/language-learners/:learner_id/history", learnerCtrl.GetHistory)
		userAPIGroup.POST("/language-questions/:question_id/report", learnerCtrl.ReportQuestion)

		// Word audio
		userAPIGroup.GET("/word/audio/get/:filename", audioCtrl.GetAudio)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Funda API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			audioManager.StopAll()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartScheduler runs the background session janitor for the process lifetime.
func StartScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Word{},
		&model.Question{},
		&model.Lesson{},
		&model.Learner{},
		&model.PointsEntry{},
		&model.LessonProgress{},
		&model.QuestionReport{},
		&model.UnitResource{},
		&model.SessionRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
