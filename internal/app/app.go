package app

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VeyselCerav/kelime/internal/config"
	"github.com/VeyselCerav/kelime/internal/controller"
	"github.com/VeyselCerav/kelime/internal/repository"
	"github.com/VeyselCerav/kelime/internal/service"
	"github.com/VeyselCerav/kelime/pkg/database"
	"github.com/VeyselCerav/kelime/pkg/logger"
	"github.com/VeyselCerav/kelime/pkg/monitoring"
	"github.com/VeyselCerav/kelime/pkg/security"
	"github.com/VeyselCerav/kelime/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client
	scheduler *gocron.Scheduler
}

type repositories struct {
	user      *repository.UserRepository
	word      *repository.WordRepository
	learned   *repository.LearnedWordRepository
	unlearned *repository.UnlearnedWordRepository
	dailyGoal *repository.DailyGoalRepository
}

type services struct {
	auth      *service.AuthService
	word      *service.WordService
	quiz      *service.QuizService
	progress  *service.ProgressService
	dailyGoal *service.DailyGoalService
	user      *service.UserService
	stats     *service.StatsService
}

type controllers struct {
	auth      *controller.AuthController
	word      *controller.WordController
	quiz      *controller.QuizController
	progress  *controller.ProgressController
	dailyGoal *controller.DailyGoalController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		word:      repository.NewWordRepository(db),
		learned:   repository.NewLearnedWordRepository(db),
		unlearned: repository.NewUnlearnedWordRepository(db),
		dailyGoal: repository.NewDailyGoalRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	mailer := service.NewLogMailer(cfg.Mail.BaseURL)

	s.auth = service.NewAuthService(repos.user, mailer, cfg.JWT)
	s.word = service.NewWordService(repos.word, rdb)
	s.dailyGoal = service.NewDailyGoalService(repos.dailyGoal, cfg.Goal.DefaultTarget)
	s.progress = service.NewProgressService(repos.learned, repos.unlearned, s.dailyGoal)
	s.quiz = service.NewQuizService(repos.word, s.progress, rand.New(rand.NewSource(time.Now().UnixNano())))
	s.user = service.NewUserService(repos.user)
	s.stats = service.NewStatsService(repos.user, repos.word, repos.learned, repos.unlearned, repos.dailyGoal)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, a.Config.Server.Mode == "release"),
		word:      controller.NewWordController(s.word),
		quiz:      controller.NewQuizController(s.quiz),
		progress:  controller.NewProgressController(s.progress),
		dailyGoal: controller.NewDailyGoalController(s.dailyGoal),
		admin:     controller.NewAdminController(s.user, s.stats),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window, "Too many requests"))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 每晚清理过期的验证/重置令牌
func (a *App) startBackgroundTasks(s *services) {
	a.scheduler = gocron.NewScheduler(time.Local)
	if _, err := a.scheduler.Every(1).Day().At("03:00").Do(s.user.PurgeExpiredTokens); err != nil {
		logger.Log.Error("failed to schedule token purge", zap.Error(err))
	}
	a.scheduler.StartAsync()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 缓存不可用时降级为直查数据库
		logger.Log.Warn("Redis unavailable, word cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kelime-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	app.startBackgroundTasks(services)

	return app
}

// ReloadConfig 热更新运行期可变的配置项，监听器回调
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config.Goal = cfg.Goal
	a.Config.Mail = cfg.Mail
	a.Config.RateLimit = cfg.RateLimit
	logger.Log.Info("Config reloaded")
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
