package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/zachristian7-dotcom/videovault/config"
	"github.com/zachristian7-dotcom/videovault/handlers"
	"github.com/zachristian7-dotcom/videovault/logger"
	"github.com/zachristian7-dotcom/videovault/middleware"
	"github.com/zachristian7-dotcom/videovault/services"
	"github.com/zachristian7-dotcom/videovault/store"
)

func main() {
	log.Println("starting videovault service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.SetLevel(cfg.Logging.Level)

	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir failed: %v", err)
	}
	if err := os.MkdirAll(cfg.Storage.ThumbDir, 0o755); err != nil {
		log.Fatalf("create thumbnail dir failed: %v", err)
	}
	if err := os.MkdirAll(cfg.Storage.TempDir, 0o755); err != nil {
		log.Fatalf("create temp dir failed: %v", err)
	}

	metadataStore := store.New(cfg.Storage.DataFile)
	if err := metadataStore.Init(); err != nil {
		log.Fatalf("init metadata store failed: %v", err)
	}
	if _, err := metadataStore.Load(); err != nil {
		log.Fatalf("load metadata store failed: %v", err)
	}

	handlers.SetServices(services.NewContainer(metadataStore))

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	setupRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)

	r.GET("/", handlers.Index)
	r.GET("/playlist/:name", handlers.Playlist)

	r.GET("/upload", handlers.UploadForm)
	r.POST("/upload", handlers.Upload)

	r.POST("/heart/:filename", handlers.Heart)
	r.POST("/view/:filename", handlers.View)
	r.POST("/delete/:filename", handlers.Delete)

	r.GET("/download/:filename", handlers.Download)
}
