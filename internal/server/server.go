package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/datvbard/landprice/internal/api"
	"github.com/datvbard/landprice/internal/config"
	"github.com/datvbard/landprice/internal/store"
)

// Server HTTP server của dịch vụ giá đất
type Server struct {
	router *gin.Engine
	store  *store.Store
}

// NewServer tạo server, mở database trong thư mục dữ liệu
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "landprice.db")

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	s := &Server{
		router: gin.Default(),
		store:  st,
	}

	s.setupRoutes(cfg)

	return s
}

// setupRoutes đăng ký middleware và route
func (s *Server) setupRoutes(cfg *config.AppConfig) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	handler := api.NewHandler(s.store, cfg)

	group := s.router.Group("/api")
	{
		handler.RegisterRoutes(group)
	}
}

// Run chạy server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close đóng các tài nguyên của server
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore trả về store (phục vụ test)
func (s *Server) GetStore() *store.Store {
	return s.store
}
