package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AtRiskMedia/pagecraft-go/api"
	"github.com/AtRiskMedia/pagecraft-go/config"
	"github.com/AtRiskMedia/pagecraft-go/email"
	"github.com/AtRiskMedia/pagecraft-go/html"
	"github.com/AtRiskMedia/pagecraft-go/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found -- config defaults will be used")
	}

	db, err := storage.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to open submission store: %v", err)
	}
	defer db.Close()
	log.Printf("Submission store ready: %s", db.GetConnectionInfo())

	mailer, err := email.NewClient()
	if err != nil {
		log.Printf("Email notifications disabled: %v", err)
		mailer = nil
	}

	generator := html.NewGenerator()
	log.Printf("Page generator ready with %d layouts", len(html.Layouts()))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(api.FilteredLogger())
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", api.HealthHandler())
		v1.POST("/pages/render", api.RenderPageHandler(generator))
		v1.POST("/forms/submit", api.SubmitFormHandler(db, mailer))
		v1.GET("/forms/submissions/:siteId", api.ListSubmissionsHandler(db))
	}

	log.Printf("PageCraft listening on :%s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
