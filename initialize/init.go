package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"points-ledger/app/controllers"
	"points-ledger/app/db"
	"points-ledger/app/hash"
	"points-ledger/app/kv"
	"points-ledger/app/middleware"
	"points-ledger/app/models"
	"points-ledger/app/repo"
	"points-ledger/app/services"
	"points-ledger/app/session"
	"points-ledger/config"
	"points-ledger/global"
	"points-ledger/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      config.Config
	DB       *gorm.DB
	Router   http.Handler
	Sessions *session.Manager
	Auth     *controllers.AuthController
	Admin    *controllers.AdminController
	Query    *controllers.QueryController
	Users    *services.UserService
	Points   *services.PointsService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	// Relational store
	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.PointsRecord{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Key-value store: redis when configured, in-process otherwise
	store, err := openKV(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	hasher, err := hash.ForScheme(cfg.Auth.Scheme)
	if err != nil {
		return nil, err
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	pointsRepo := repo.NewPointsRepository(gdb)
	userSvc := services.NewUserService(userRepo, hasher)
	pointsSvc := services.NewPointsService(pointsRepo, global.Logger)
	configSvc := services.NewConfigService(store)
	qrSvc := services.NewQRService(store, nil)
	if err := userSvc.EnsureAdmin(cfg.Auth.AdminUser, cfg.Auth.AdminPassword); err != nil {
		global.Logger.Warn().Err(err).Msg("admin bootstrap failed")
	}

	sessions := session.NewManager(store).
		WithTTL(time.Duration(cfg.Session.TTLHours) * time.Hour)

	// Controllers
	authCtrl := controllers.NewAuthController(userSvc, sessions)
	queryCtrl := controllers.NewQueryController(pointsSvc)
	adminCtrl := controllers.NewAdminController(pointsSvc, cfg.Upload.MaxBytes)
	cfgCtrl := controllers.NewConfigController(configSvc)
	qrCtrl := controllers.NewQRController(qrSvc)
	mw := &middleware.Auth{Sessions: sessions}

	h := router.NewRouter(authCtrl, queryCtrl, adminCtrl, cfgCtrl, qrCtrl, mw)
	h = middleware.Logging(h)

	return &App{
		Cfg:      *cfg,
		DB:       gdb,
		Router:   h,
		Sessions: sessions,
		Auth:     authCtrl,
		Admin:    adminCtrl,
		Query:    queryCtrl,
		Users:    userSvc,
		Points:   pointsSvc,
	}, nil
}

func openKV(cfg config.Redis) (kv.Store, error) {
	if cfg.Addr == "" {
		global.Logger.Warn().Msg("no redis address configured, sessions are process-local")
		return kv.NewMemoryStore(), nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Pass, DB: cfg.DB})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	global.Rdb = client
	return kv.NewRedisStore(client), nil
}
