package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Omar0902/SDOM/internal/api/handlers"
	"github.com/Omar0902/SDOM/internal/api/middleware"
	"github.com/Omar0902/SDOM/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	port := os.Getenv("SDOM_API_PORT")
	if port == "" {
		port = "8080"
	}

	solverCfgPath := os.Getenv("SDOM_SOLVER_CONFIG")
	var solverCfg config.SolverConfig
	if solverCfgPath != "" {
		cfg, err := config.Load(solverCfgPath)
		if err != nil {
			log.Error("failed to load solver config", "path", solverCfgPath, "error", err)
			os.Exit(1)
		}
		solverCfg = cfg.Solver
	} else {
		solverCfg = config.SolverConfig{SolverName: "highs"}
	}

	if os.Getenv("SDOM_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	modelHandler := handlers.NewModelHandler(solverCfg, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/models", modelHandler.CreateModel)
		api.POST("/models/:id/solve", modelHandler.SolveModel)
		api.POST("/models/:id/export", modelHandler.ExportModel)
		api.GET("/formulations", handlers.ListFormulations)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info("starting SDOM API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
