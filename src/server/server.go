package server

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"investment-outlook/src/engine"
	"investment-outlook/src/interfaces"
	"investment-outlook/src/logger"
	"investment-outlook/src/models"
	"investment-outlook/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// APIServer
// -----------------------------------------------------------------------------

type APIServer struct {
	Config *models.MConfig
	Logger *logger.Logger
	engine *gin.Engine

	// Collaborators
	Equity     *engine.EquityEngine
	TimeSeries *engine.TimeSeriesBuilder
	Valuation  interfaces.IValuationProvider
	Calendar   *utils.MarketCalendar
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewAPIServer(cfg *models.MConfig, log *logger.Logger, equity *engine.EquityEngine, ts *engine.TimeSeriesBuilder, valuation interfaces.IValuationProvider) *APIServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &APIServer{
		Config:     cfg,
		Logger:     log,
		engine:     gin.Default(),
		Equity:     equity,
		TimeSeries: ts,
		Valuation:  valuation,
		Calendar:   utils.NewMarketCalendar(),
	}

	s.engine.Use(s.corsMiddleware())
	s.engine.Use(s.requestIDMiddleware())
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Middleware
// -----------------------------------------------------------------------------

func (s *APIServer) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// -----------------------------------------------------------------------------

// requestIDMiddleware tags every request with an ID and logs the outcome.
func (s *APIServer) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)

		start := time.Now()
		c.Next()
		s.Logger.Debug("%s %s -> %d in %s [%s]",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), id)
	}
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *APIServer) setupRoutes() {
	s.engine.GET("/api/stock/hypothetical-return", s.getStockHypotheticalReturn)
	s.engine.GET("/api/stock/historical", s.getStockHistorical)
	s.engine.GET("/api/real-estate/hypothetical", s.getRealEstateHypothetical)
	s.engine.GET("/api/real-estate/value", s.getRealEstateValue)
	s.engine.GET("/api/compare", s.getCompare)
	s.engine.GET("/api/compare/time-series", s.getCompareTimeSeries)
	s.engine.GET("/api/health", s.getHealth)

	// Static frontend
	if s.Config.StaticDir != "" {
		s.engine.StaticFile("/", filepath.Join(s.Config.StaticDir, "index.html"))
		s.engine.StaticFile("/app.js", filepath.Join(s.Config.StaticDir, "app.js"))
	}
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *APIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)
	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

// Handler returns the underlying http.Handler, used by tests.
func (s *APIServer) Handler() *gin.Engine {
	return s.engine
}

// -----------------------------------------------------------------------------

func (s *APIServer) getHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":     "ok",
		"service":    s.Config.Name,
		"marketOpen": s.Calendar.IsOpen(time.Now()),
	})
}
