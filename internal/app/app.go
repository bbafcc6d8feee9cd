package app

import (
	"context"
	"errors"
	"fcc_dashboard/internal/config"
	"fcc_dashboard/internal/controller"
	"fcc_dashboard/internal/repository"
	"fcc_dashboard/internal/service"
	"fcc_dashboard/internal/util"
	"fcc_dashboard/pkg/cache"
	"fcc_dashboard/pkg/configwatcher"
	"fcc_dashboard/pkg/logger"
	"fcc_dashboard/pkg/monitoring"
	"fcc_dashboard/pkg/security"
	"fcc_dashboard/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Redis    *redis.Client
	Services *Services

	tracer          *sdktrace.TracerProvider
	cancel          context.CancelFunc
	ctx             context.Context
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type Services struct {
	Dataset   *service.DatasetService
	KPI       *service.KPIService
	Chart     *service.ChartService
	Dashboard *service.DashboardService
	Render    *service.RenderService
	Narrative *service.NarrativeService
	Storage   *service.StorageService
	Export    *service.ExportService
}

type controllers struct {
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热加载入口：更新展示设置、图表尺寸和日志级别，再通知回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	a.Config = cfg
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	a.Services.Dashboard.UpdateSettings(cfg.Dashboard)
	a.Services.Render.Resize(cfg.Chart)
	logger.SetLevel(cfg.Server.Mode)

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initCache(cfg *config.Config) (cache.Cache, error) {
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	switch cfg.Cache.Type {
	case util.CacheRedis:
		rdb, err := cache.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
		return cache.NewRedisCache(rdb, ttl), nil
	case util.CacheNone:
		return cache.Noop{}, nil
	default:
		return cache.NewMemoryCache(cfg.Cache.Size, ttl), nil
	}
}

// NewServices 组装服务层，CLI 命令与 HTTP 服务共用
func NewServices(cfg *config.Config, c cache.Cache) *Services {
	s := &Services{}

	s.Dataset = service.NewDatasetService(repository.NewDatasetRepository())
	s.KPI = service.NewKPIService()
	s.Chart = service.NewChartService()
	s.Dashboard = service.NewDashboardService(s.Dataset, s.KPI, s.Chart, cfg.Dashboard)
	s.Render = service.NewRenderService(c, cfg.Chart)
	s.Narrative = service.NewNarrativeService()
	s.Storage = service.NewStorageService(cfg)
	s.Export = service.NewExportService(s.Dashboard, s.Render, s.Narrative, s.Storage)

	return s
}

func (a *App) initControllers(s *Services, cfg *config.Config) *controllers {
	return &controllers{
		dashboard: controller.NewDashboardController(s.Dashboard, s.Render, s.Narrative),
		health:    controller.NewHealthController(s.Dataset, cfg.Cache.Type),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	router.Use(security.NewLimiter(a.ctx, cfg.RateLimit.MaxRequests, window).Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 不初始化日志，由调用方决定
func NewApp(cfg *config.Config) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config: cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	c, err := app.initCache(cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			cancel()
			return nil, err
		}
		app.tracer = tp
	}

	monitoring.Init()

	app.Services = NewServices(cfg, c)
	controllers := app.initControllers(app.Services, cfg)

	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app, nil
}

// WatchConfig 配置文件存在时启动热加载
func (a *App) WatchConfig() {
	if a.Config.File == "" {
		return
	}
	go func() {
		if err := configwatcher.WatchConfig(a.ctx, a.Config.File, a.ApplyConfig); err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// Close 释放后台协程、追踪和 Redis 连接
func (a *App) Close() {
	a.cancel()

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
}

func (a *App) Run() error {
	defer a.Close()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
