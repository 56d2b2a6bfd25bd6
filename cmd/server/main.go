package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"reelrank/internal/config"
	"reelrank/internal/database"
	"reelrank/internal/movies"
	"reelrank/internal/tmdb"
	"reelrank/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db, &movies.Movie{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	store := movies.NewStore(db, logger)
	client := tmdb.NewClient(tmdb.NewConfig(cfg.TMDBAPIKey), logger)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	handlers := web.NewHandlers(store, client, logger)
	handlers.Register(r)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
