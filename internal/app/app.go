package app

import (
	"context"
	"exam_platform_backend/internal/config"
	"exam_platform_backend/internal/controller"
	"exam_platform_backend/internal/grading"
	"exam_platform_backend/internal/middleware"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/service"
	"exam_platform_backend/pkg/database"
	"exam_platform_backend/pkg/llm"
	"exam_platform_backend/pkg/logger"
	"exam_platform_backend/pkg/monitoring"
	"exam_platform_backend/pkg/security"
	"exam_platform_backend/pkg/tracing"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	// Policy 主观题评分策略，配置热更新时替换参数
	Policy *grading.OpenAnswerPolicy

	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	class      *repository.ClassRepository
	paper      *repository.PaperRepository
	submission *repository.SubmissionRepository
	analytics  *repository.AnalyticsRepository
}

type services struct {
	auth       *service.AuthService
	class      *service.ClassService
	paper      *service.PaperService
	submission *service.SubmissionService
	analytics  *service.AnalyticsService
}

type controllers struct {
	auth       *controller.AuthController
	class      *controller.ClassController
	paper      *controller.PaperController
	submission *controller.SubmissionController
	analytics  *controller.AnalyticsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新：只替换可在运行时安全变更的部分
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// GradingSettings 从配置构造主观题评分参数
func GradingSettings(cfg *config.Config) grading.Settings {
	return grading.Settings{
		MaxAnswerChars: cfg.Grading.MaxAnswerChars,
		Strictness:     grading.ParseStrictness(cfg.Grading.Strictness),
		Timeout:        cfg.Grading.DelegateTimeout(),
	}
}

// NewOpenAnswerGrader 按配置创建语言模型评分者；未配置 provider 时返回 nil，主观题一律 0 分
func NewOpenAnswerGrader(ctx context.Context, cfg *config.Config) (grading.OpenAnswerGrader, error) {
	provider, err := llm.NewProvider(ctx, llm.Config{
		Provider: cfg.AI.Provider,
		BaseURL:  cfg.AI.BaseURL,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		Timeout:  time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	if provider == nil {
		logger.L().Warn("No AI provider configured, open answers will score 0")
		return nil, nil
	}
	logger.L().Info("Open answer grader ready",
		zap.String("provider", cfg.AI.Provider),
		zap.String("model", provider.ModelID()),
	)
	return service.NewAIService(provider, cfg.AI.MaxTokens), nil
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		class:      repository.NewClassRepository(db),
		paper:      repository.NewPaperRepository(db),
		submission: repository.NewSubmissionRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, grader *grading.Grader) *services {
	return &services{
		auth:       service.NewAuthService(repos.user, cfg),
		class:      service.NewClassService(repos.class, repos.user),
		paper:      service.NewPaperService(repos.paper, repos.class, repos.submission),
		submission: service.NewSubmissionService(repos.paper, repos.submission, repos.user, grader),
		analytics:  service.NewAnalyticsService(repos.analytics, cfg.Analytics),
	}
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		class:      controller.NewClassController(s.class),
		paper:      controller.NewPaperController(s.paper),
		submission: controller.NewSubmissionController(s.submission),
		analytics:  controller.NewAnalyticsController(s.analytics),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(), middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 组装应用；openGrader 为 nil 时主观题按 0 分处理
func New(cfg *config.Config, db *gorm.DB, openGrader grading.OpenAnswerGrader) *App {
	policy := grading.NewOpenAnswerPolicy(openGrader, GradingSettings(cfg))

	app := &App{
		Config: cfg,
		DB:     db,
		Policy: policy,
	}
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		policy.UpdateSettings(GradingSettings(newCfg))
		logger.L().Info("Grading settings updated",
			zap.Int("max_answer_chars", newCfg.Grading.MaxAnswerChars),
			zap.String("strictness", newCfg.Grading.Strictness),
		)
	})

	repos := initRepositories(db)
	svc := initServices(repos, cfg, grading.NewGrader(policy))
	ctrls := initControllers(svc, db)

	monitoring.Init()

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	return app
}

// NewApp 按配置初始化日志、数据库、评分者与追踪
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.L().Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		logger.L().Info("Database migrated")
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}, nil
	}

	openGrader, err := NewOpenAnswerGrader(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	app := New(cfg, db, openGrader)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		app.tracer = tp
	}

	return app, nil
}

// Run 阻塞直到收到退出信号，然后优雅关闭
func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.L().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.L().Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.L().Info("Server exiting")
	return nil
}
