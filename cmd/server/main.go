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

	"github.com/gin-gonic/gin"

	"github.com/jengzang/turismo-backend-go/internal/api"
	"github.com/jengzang/turismo-backend-go/internal/config"
	"github.com/jengzang/turismo-backend-go/internal/dataset"
	"github.com/jengzang/turismo-backend-go/internal/observability"
	"github.com/jengzang/turismo-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	gin.SetMode(cfg.GinMode)

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	// 加载数据
	ds, err := dataset.Load(context.Background(), cfg.DataPath, dataset.Options{
		Sheet: cfg.DataSheet,
		Table: cfg.DataTable,
	})
	if err != nil {
		log.Fatal("Failed to load dataset: ", err)
	}

	viewService, err := service.NewViewServiceFromConfig(ds, cfg)
	if err != nil {
		log.Fatal("Failed to configure views: ", err)
	}

	// 初始化路由
	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           api.SetupRouter(cfg, viewService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
