package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// 写超时
	writeTimeout = 10 * time.Second

	// 心跳超时：客户端必须在此时间内响应pong，否则视为断线
	heartbeatWait = 60 * time.Second

	// ping间隔（必须小于heartbeatWait）
	pingInterval = (heartbeatWait * 9) / 10

	// 派单推送都是小报文，限制上行消息大小防止恶意大包
	inboundLimit = 4 * 1024
)

// 骑手端上行消息类型
const (
	inboundPong          = "pong"
	inboundAssignmentAck = "assignment_ack"
)

// assignmentAck 骑手确认收到派单推送
type assignmentAck struct {
	OrderID int64 `json:"order_id"`
}

// NewClient 创建新的客户端连接
func NewClient(hub *Hub, conn *websocket.Conn, info ClientInfo) *Client {
	return &Client{
		info: info,
		hub:  hub,
		send: make(chan Message, 256),
		done: make(chan struct{}),
		conn: conn,
	}
}

// tag 把客户端身份附到日志事件上
func (c *Client) tag(evt *zerolog.Event) *zerolog.Event {
	return evt.
		Str("client_type", string(c.info.ClientType)).
		Int64("entity_id", c.info.EntityID)
}

// ReadPump 从WebSocket读取上行消息
// 连接断开或被新连接顶替时负责从Hub注销
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(inboundLimit)
	c.conn.SetReadDeadline(time.Now().Add(heartbeatWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(heartbeatWait))
	})

	for {
		select {
		case <-c.done:
			return
		default:
		}

		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.tag(log.Error().Err(err)).Msg("WebSocket read error")
			}
			return
		}

		c.handleInbound(msg)
	}
}

// handleInbound 处理上行消息
// 骑手端只上行心跳和派单确认；位置上报走HTTP接口，不从这里收
func (c *Client) handleInbound(msg Message) {
	switch msg.Type {
	case inboundPong:
		// 文本心跳，等同于协议层pong
		c.conn.SetReadDeadline(time.Now().Add(heartbeatWait))

	case inboundAssignmentAck:
		if c.info.ClientType != ClientTypeDriver {
			c.tag(log.Warn()).Msg("assignment ack from non-driver client")
			return
		}

		var ack assignmentAck
		if err := json.Unmarshal(msg.Data, &ack); err != nil {
			c.tag(log.Warn().Err(err)).Msg("malformed assignment ack")
			return
		}

		log.Info().
			Int64("driver_id", c.info.EntityID).
			Int64("order_id", ack.OrderID).
			Msg("driver acknowledged assignment")

	default:
		c.tag(log.Warn().Str("type", msg.Type)).Msg("unexpected inbound message type")
	}
}

// WritePump 向WebSocket写入下行消息并定期发ping
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				// Hub注销了该客户端
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				c.tag(log.Error().Err(err).Str("msg_type", msg.Type)).Msg("WebSocket write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			// 同一骑手的新连接顶掉了这条
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "replaced by newer connection"))
			return
		}
	}
}
