package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"propostas/internal/api"
	"propostas/internal/config"
	"propostas/internal/dataset"
	"propostas/internal/parser"
	"propostas/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	data   *dataset.Dataset
	api    *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) (*Server, error) {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, err
	}

	data := dataset.New(dataset.Source{
		Path:    cfg.Source.Path,
		Sheet:   cfg.Source.Sheet,
		Options: parser.Options{ColumnAliases: cfg.Source.ColumnAliases},
	})

	var st *store.Store
	if cfg.Data.AuditLog {
		st, err = store.New(config.AuditDBPath(dataDir))
		if err != nil {
			return nil, err
		}
		data.OnLoad(api.LoadLogHook(st))
	}

	s := &Server{
		router: gin.Default(),
		store:  st,
		data:   data,
		api:    api.NewHandler(data, st, cfg.Vocabulary(), config.ExportsDir(dataDir)),
	}

	s.setupRoutes(devMode)

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	group := s.router.Group("/api")
	{
		s.api.RegisterRoutes(group)
	}

	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	sub, _ := fs.Sub(staticFiles, "dist")

	assetsSub, _ := fs.Sub(sub, "assets")
	s.router.StaticFS("/assets", http.FS(assetsSub))

	s.router.GET("/favicon.svg", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "favicon.svg")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "image/svg+xml", data)
	})

	index := func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
	s.router.GET("/", index)
	s.router.NoRoute(index)
}

// Warmup 预先加载源表，失败只记录日志（页面会显示错误提示）
func (s *Server) Warmup() {
	snap, err := s.data.Get()
	if err != nil {
		log.Printf("加载源表失败: %v", err)
		return
	}
	log.Printf("源表已加载: %d 条记录, %d 行日期无效被忽略", len(snap.Records), len(snap.Dropped))
}

// Handler 返回 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 释放存储
func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
