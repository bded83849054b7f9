package main

import (
	"log"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/northmart/media_bridge/biz/dal/model"
	"github.com/northmart/media_bridge/biz/handler"
	"github.com/northmart/media_bridge/biz/middleware"
	"github.com/northmart/media_bridge/biz/router"
	"github.com/northmart/media_bridge/biz/service"
	"github.com/northmart/media_bridge/pkg/config"
	"github.com/northmart/media_bridge/pkg/database"
	"github.com/northmart/media_bridge/pkg/lock"
	redisclient "github.com/northmart/media_bridge/pkg/redis"
	"github.com/northmart/media_bridge/pkg/storage"
	"github.com/northmart/media_bridge/pkg/validator"
)

const writeLockKey = "media_bridge:write_lock"

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&model.Media{}); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// A half-configured storage backend (e.g. missing CLOUDINARY_URL) must
	// keep the process from serving traffic at all.
	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("init storage backend: %v", err)
	}
	log.Printf("storage backend: %s", store.Type())

	rdb, err := redisclient.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("init redis: %v", err)
	}
	if rdb != nil {
		middleware.InitWriteLock(lock.New(rdb, writeLockKey, 30*time.Second, 10*time.Second))
		log.Printf("distributed write lock enabled")
	}

	uploads := validator.NewUploadConfig(cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)
	svc := service.NewService(db, store, uploads)

	h := server.Default(server.WithHostPorts(cfg.Server.Address))
	h.Use(middleware.Recovery())
	h.Use(middleware.Logging())
	h.Use(middleware.CORS(&cfg.CORS))
	h.Use(middleware.Auth())

	router.RegisterMediaRoutes(h, handler.NewMediaHandler(svc))

	h.Spin()
}
