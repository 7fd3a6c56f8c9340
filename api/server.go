package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quickbite/dispatch/algorithm"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/quickbite/dispatch/util"
	"github.com/quickbite/dispatch/websocket"
	"github.com/quickbite/dispatch/worker"
	"github.com/rs/zerolog/log"
)

// MessageResponse 通用消息响应
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the dispatch service.
type Server struct {
	config          util.Config
	store           db.Store
	allocation      *algorithm.AllocationService
	optimizer       *algorithm.RouteOptimizer
	taskDistributor worker.TaskDistributor
	wsHub           *websocket.Hub           // WebSocket连接管理（骑手和运营端）
	wsPubSub        *websocket.PubSubManager // Redis Pub/Sub管理（跨进程推送）
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor) (*Server, error) {
	// 创建WebSocket Hub（管理骑手和运营端的实时连接）
	wsHub := websocket.NewHub(context.Background())

	// 创建Redis Pub/Sub管理器（worker进程的派单结果经它推到骑手端）
	var wsPubSub *websocket.PubSubManager
	if config.RedisAddress != "" {
		var err error
		wsPubSub, err = websocket.NewPubSubManager(config.RedisAddress, config.RedisPassword, wsHub)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create PubSub manager, WebSocket push will be disabled")
		} else {
			wsPubSub.Start()
			log.Info().Msg("WebSocket PubSub manager started")
		}
	}

	server := &Server{
		config:          config,
		store:           store,
		allocation:      algorithm.NewAllocationService(store, algorithm.DefaultAllocationConfig()),
		optimizer:       algorithm.NewRouteOptimizer(),
		taskDistributor: taskDistributor,
		wsHub:           wsHub,
		wsPubSub:        wsPubSub,
	}

	server.setupRouter()
	return server, nil
}

// GetWebSocketHub returns the WebSocket hub for external access
func (server *Server) GetWebSocketHub() *websocket.Hub {
	return server.wsHub
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 注册自定义验证器
	registerCustomValidators()

	// 跨域资源共享中间件
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	// 安全响应头中间件
	router.Use(SecurityHeadersMiddleware())

	// 请求追踪中间件（生成 X-Request-ID）
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())

	// 速率限制中间件
	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	// 全局超时中间件：防止慢查询导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	// 健康检查端点（供 Nginx/K8s 使用）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	// API v1
	v1 := router.Group("/v1")

	// 骑手管理
	v1.POST("/drivers", server.createDriver)
	v1.GET("/drivers/available", server.listAvailableDrivers)
	v1.GET("/drivers/:id", server.getDriver)
	v1.PATCH("/drivers/:id/status", server.updateDriverStatus)
	v1.POST("/drivers/:id/location", server.updateDriverLocation)

	// 商户管理
	v1.POST("/merchants", server.createMerchant)
	v1.GET("/merchants/:id", server.getMerchant)

	// 订单管理
	v1.POST("/orders", server.createOrder)
	v1.GET("/orders/unassigned", server.listUnassignedOrders)
	v1.GET("/orders/:id", server.getOrder)
	v1.POST("/orders/:id/pickup", server.markOrderPickedUp)
	v1.POST("/orders/:id/complete", server.completeDelivery)

	// 派单
	v1.POST("/orders/:id/find-best-driver", server.findBestDriver)
	v1.POST("/orders/:id/auto-assign", server.autoAssignOrder)
	v1.POST("/orders/:id/reassign", server.reassignOrder)
	// 批量派单走任务队列，限制触发频率
	v1.POST("/allocations/batch", rateLimiter.SensitiveAPIMiddleware(30), server.batchAllocate)

	// 路径规划
	v1.POST("/routes/optimize", server.optimizeRoute)
	v1.POST("/routes/auto-plan", server.autoPlanRoute)
	v1.POST("/drivers/:id/route/plan", server.planDriverRoute)
	v1.GET("/drivers/:id/route", server.getDriverRoute)

	// 送达时间预测
	v1.POST("/eta/predict", server.predictETA)

	// WebSocket：骑手接收派单推送，运营端接收告警
	v1.GET("/ws/drivers/:id", server.handleDriverWebSocket)
	v1.GET("/ws/operators", server.handleOperatorWebSocket)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "dispatch-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "dispatch-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	// Attach to gin context so RequestLoggingMiddleware can include it
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
