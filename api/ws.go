package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla_websocket "github.com/gorilla/websocket"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/quickbite/dispatch/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = gorilla_websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 生产环境需要验证Origin
	},
}

// handleDriverWebSocket 骑手实时连接
// 必须在线才能建立连接，同一骑手重连会替换旧连接
func (server *Server) handleDriverWebSocket(ctx *gin.Context) {
	var uri getDriverRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	driver, err := server.store.GetDriver(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("driver not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if driver.Status == "offline" {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("driver must be online to receive dispatch push")))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := websocket.NewClient(server.wsHub, conn, websocket.ClientInfo{
		ClientType: websocket.ClientTypeDriver,
		EntityID:   driver.ID,
	})

	server.wsHub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

type operatorWebSocketRequest struct {
	OperatorID int64 `form:"operator_id" binding:"required,min=1"`
}

// handleOperatorWebSocket 运营端实时连接，接收派单失败等告警
func (server *Server) handleOperatorWebSocket(ctx *gin.Context) {
	var req operatorWebSocketRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := websocket.NewClient(server.wsHub, conn, websocket.ClientInfo{
		ClientType: websocket.ClientTypeOperator,
		EntityID:   req.OperatorID,
	})

	server.wsHub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
