package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jeffaseo/backend/analyzer"
	"github.com/jeffaseo/backend/logging"
	"github.com/jeffaseo/backend/meta"
	"github.com/jeffaseo/backend/middleware"
	"github.com/jeffaseo/backend/service"
	"github.com/jeffaseo/backend/sitemap"
)

var (
	seoService  *service.Service
	rateLimiter *middleware.RateLimiter
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	loadEnv()
	setupGinMode()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	var err error
	seoService, err = service.New(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize analysis service:", err)
	}
	defer seoService.Shutdown()

	rateLimiter = middleware.NewRateLimiter(2, 5) // 2 requests per second, bucket size of 5

	// Initialize usage statistics
	stats := logging.Initialize()

	r := gin.Default()

	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestID())
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Usage tracking middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		if c.Request.URL.Path == "/api/analyze" && c.Request.Method == "POST" {
			loadTime := float64(time.Since(start).Milliseconds())
			stats.TrackAnalysis(c.GetString("analyzedKeyword"), loadTime, c.Writer.Status() >= 400)
		}

		// Periodically save statistics
		if stats.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go stats.Save()
		}
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		api.POST("/analyze", analyzeContent)
		api.POST("/score", scorePage)
		api.POST("/keywords", extractKeywords)
		api.POST("/density", densityReport)
		api.POST("/meta", buildMetaTags)
		api.POST("/serp", buildSnippet)
		api.POST("/sitemap", buildSitemap)

		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, stats.GetStatistics())
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082" // Default port
	}

	log.Printf("Server starting on http://localhost:%s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// analyzeContent analyzes a keyword against either an HTML page or raw
// text. HTML requests also get a full page score and snippet preview.
func analyzeContent(c *gin.Context) {
	var request struct {
		HTML    string            `json:"html"`
		Text    string            `json:"text"`
		Keyword string            `json:"keyword" binding:"required"`
		Tier    analyzer.SerpTier `json:"tier"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "keyword is required",
		})
		return
	}
	c.Set("analyzedKeyword", analyzer.Normalize(request.Keyword))

	if request.HTML != "" {
		analysis, err := seoService.AnalyzePage(request.HTML, request.Keyword)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, analysis)
		return
	}

	result := seoService.AnalyzeText(request.Text, request.Keyword, request.Tier)
	c.JSON(http.StatusOK, result)
}

func scorePage(c *gin.Context) {
	var input analyzer.ScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid scoring input",
		})
		return
	}

	score, err := analyzer.ScorePage(input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, score)
}

func extractKeywords(c *gin.Context) {
	var request struct {
		Text      string   `json:"text" binding:"required"`
		MinLength int      `json:"minLength"`
		StopWords []string `json:"stopWords"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "text is required",
		})
		return
	}

	var stopWords map[string]bool
	if request.StopWords != nil {
		stopWords = make(map[string]bool, len(request.StopWords))
		for _, w := range request.StopWords {
			stopWords[analyzer.Normalize(w)] = true
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"keywords": analyzer.ExtractKeywords(request.Text, request.MinLength, stopWords),
	})
}

func densityReport(c *gin.Context) {
	var request struct {
		Text     string   `json:"text" binding:"required"`
		Keywords []string `json:"keywords" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "text and keywords are required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": analyzer.DensityReport(request.Text, request.Keywords),
	})
}

func buildMetaTags(c *gin.Context) {
	var request struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		Keywords    []string `json:"keywords"`
		Canonical   string   `json:"canonical"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "title is required",
		})
		return
	}

	c.JSON(http.StatusOK, meta.BuildTags(request.Title, request.Description, request.Keywords, request.Canonical))
}

func buildSnippet(c *gin.Context) {
	var request struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		URL         string `json:"url"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "title is required",
		})
		return
	}

	c.JSON(http.StatusOK, meta.BuildSnippet(request.Title, request.Description, request.URL))
}

func buildSitemap(c *gin.Context) {
	var request struct {
		URLs []sitemap.URL `json:"urls" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "urls are required",
		})
		return
	}

	// Past the per-file limit the response is an index plus one document
	// per chunk; below it a single document.
	if len(request.URLs) <= sitemap.MaxURLsPerFile {
		doc, err := sitemap.Marshal(request.URLs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/xml", doc)
		return
	}

	docs, err := sitemap.MarshalAll(request.URLs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, string(doc))
	}
	c.JSON(http.StatusOK, gin.H{
		"sitemaps": parts,
	})
}
