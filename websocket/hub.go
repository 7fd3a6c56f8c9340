package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	gorilla_websocket "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Message 通过WebSocket发送的消息结构
type Message struct {
	Type      string          `json:"type"`      // 消息类型：assignment/route_update/order_status/alert/ping/pong
	Data      json.RawMessage `json:"data"`      // 消息数据
	Timestamp time.Time       `json:"timestamp"` // 消息时间戳
}

// ClientType 客户端连接类型
type ClientType string

const (
	ClientTypeDriver   ClientType = "driver"   // 骑手
	ClientTypeOperator ClientType = "operator" // 调度运营（大盘，接收告警）
)

// ClientInfo 客户端信息
type ClientInfo struct {
	ClientType ClientType // 客户端类型
	EntityID   int64      // 实体ID（骑手ID或运营人员ID）
}

// Client 表示一个WebSocket客户端连接
type Client struct {
	info      ClientInfo
	hub       *Hub
	send      chan Message
	done      chan struct{}
	conn      *gorilla_websocket.Conn // gorilla websocket连接
	closeOnce sync.Once               // 确保 send channel 只关闭一次
}

// Hub 管理所有WebSocket连接
type Hub struct {
	// 注册的客户端，按类型和实体ID索引
	drivers   map[int64]*Client // key: driver_id
	operators map[int64]*Client // key: operator_id

	// 注册/注销通道
	register   chan *Client
	unregister chan *Client

	// 广播消息
	broadcast chan BroadcastMessage

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// BroadcastMessage 广播消息
type BroadcastMessage struct {
	ClientType ClientType // 目标客户端类型
	EntityID   int64      // 目标实体ID，0表示广播给所有该类型客户端
	Message    Message    // 消息内容
}

// NewHub 创建新的Hub
func NewHub(ctx context.Context) *Hub {
	ctx, cancel := context.WithCancel(ctx)
	return &Hub{
		drivers:    make(map[int64]*Client),
		operators:  make(map[int64]*Client),
		register:   make(chan *Client, 10),
		unregister: make(chan *Client, 10),
		broadcast:  make(chan BroadcastMessage, 100),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run 启动Hub，处理注册、注销和广播
func (h *Hub) Run() {
	log.Info().Msg("WebSocket Hub started")
	defer log.Info().Msg("WebSocket Hub stopped")

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// registerClient 注册客户端
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch client.info.ClientType {
	case ClientTypeDriver:
		if old, exists := h.drivers[client.info.EntityID]; exists {
			// 关闭旧连接
			close(old.done)
		}
		h.drivers[client.info.EntityID] = client
		log.Info().
			Int64("driver_id", client.info.EntityID).
			Msg("Driver connected via WebSocket")

	case ClientTypeOperator:
		if old, exists := h.operators[client.info.EntityID]; exists {
			// 关闭旧连接
			close(old.done)
		}
		h.operators[client.info.EntityID] = client
		log.Info().
			Int64("operator_id", client.info.EntityID).
			Msg("Operator connected via WebSocket")
	}
}

// unregisterClient 注销客户端
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch client.info.ClientType {
	case ClientTypeDriver:
		// 只有当 map 中的 client 就是当前要注销的 client 时才删除
		// 避免新连接替换旧连接后，旧连接注销时删除了新连接
		if existing, exists := h.drivers[client.info.EntityID]; exists && existing == client {
			delete(h.drivers, client.info.EntityID)
			client.closeOnce.Do(func() {
				close(client.send)
			})
			log.Info().
				Int64("driver_id", client.info.EntityID).
				Msg("Driver disconnected from WebSocket")
		}

	case ClientTypeOperator:
		if existing, exists := h.operators[client.info.EntityID]; exists && existing == client {
			delete(h.operators, client.info.EntityID)
			client.closeOnce.Do(func() {
				close(client.send)
			})
			log.Info().
				Int64("operator_id", client.info.EntityID).
				Msg("Operator disconnected from WebSocket")
		}
	}
}

// broadcastMessage 广播消息
func (h *Hub) broadcastMessage(msg BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	switch msg.ClientType {
	case ClientTypeDriver:
		if msg.EntityID == 0 {
			// 广播给所有骑手
			for _, client := range h.drivers {
				select {
				case client.send <- msg.Message:
				default:
					log.Warn().
						Int64("driver_id", client.info.EntityID).
						Msg("Driver send buffer full, dropping message")
				}
			}
		} else {
			// 发送给特定骑手
			if client, exists := h.drivers[msg.EntityID]; exists {
				select {
				case client.send <- msg.Message:
				default:
					log.Warn().
						Int64("driver_id", msg.EntityID).
						Msg("Driver send buffer full, dropping message")
				}
			}
		}

	case ClientTypeOperator:
		// 调度告警广播给所有在线运营人员
		for _, client := range h.operators {
			select {
			case client.send <- msg.Message:
			default:
				log.Warn().
					Int64("operator_id", client.info.EntityID).
					Msg("Operator send buffer full, dropping message")
			}
		}
	}
}

// Register 注册客户端到Hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister 从Hub注销客户端
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast 广播消息
func (h *Hub) Broadcast(msg BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Warn().Msg("Broadcast channel full, dropping message")
	}
}

// SendToDriver 发送消息给特定骑手
func (h *Hub) SendToDriver(driverID int64, msg Message) {
	h.Broadcast(BroadcastMessage{
		ClientType: ClientTypeDriver,
		EntityID:   driverID,
		Message:    msg,
	})
}

// BroadcastToAllDrivers 广播消息给所有在线骑手
func (h *Hub) BroadcastToAllDrivers(msg Message) {
	h.Broadcast(BroadcastMessage{
		ClientType: ClientTypeDriver,
		EntityID:   0,
		Message:    msg,
	})
}

// BroadcastToDrivers 广播消息给指定的骑手列表（用于按区域推送新订单）
func (h *Hub) BroadcastToDrivers(driverIDs []int64, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, driverID := range driverIDs {
		if client, exists := h.drivers[driverID]; exists {
			select {
			case client.send <- msg:
			default:
				log.Warn().
					Int64("driver_id", driverID).
					Msg("Driver send buffer full, dropping message")
			}
		}
	}
}

// GetOnlineDriverIDs 获取所有在线骑手的ID列表
func (h *Hub) GetOnlineDriverIDs() []int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]int64, 0, len(h.drivers))
	for id := range h.drivers {
		ids = append(ids, id)
	}
	return ids
}

// IsDriverOnline 检查骑手是否在线
func (h *Hub) IsDriverOnline(driverID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.drivers[driverID]
	return exists
}

// GetOnlineDriverCount 获取在线骑手数量
func (h *Hub) GetOnlineDriverCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.drivers)
}

// GetOnlineOperatorCount 获取在线运营人员数量
func (h *Hub) GetOnlineOperatorCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.operators)
}

// AlertType 告警类型
type AlertType string

const (
	AlertTypeAssignmentFailed   AlertType = "ASSIGNMENT_FAILED"    // 派单失败
	AlertTypeStaleAssignment    AlertType = "STALE_ASSIGNMENT"     // 派单长时间未取货
	AlertTypeTaskEnqueueFailure AlertType = "TASK_ENQUEUE_FAILURE" // 任务入队失败
	AlertTypeSystemError        AlertType = "SYSTEM_ERROR"         // 系统错误
)

// AlertLevel 告警级别
type AlertLevel string

const (
	AlertLevelCritical AlertLevel = "critical" // 严重
	AlertLevelWarning  AlertLevel = "warning"  // 警告
	AlertLevelInfo     AlertLevel = "info"     // 信息
)

// AlertData 告警数据结构
type AlertData struct {
	AlertType   AlertType              `json:"alert_type"`   // 告警类型
	Level       AlertLevel             `json:"level"`        // 告警级别
	Title       string                 `json:"title"`        // 告警标题
	Message     string                 `json:"message"`      // 告警详情
	RelatedID   int64                  `json:"related_id"`   // 相关实体ID（订单ID、骑手ID等）
	RelatedType string                 `json:"related_type"` // 相关实体类型
	Extra       map[string]interface{} `json:"extra"`        // 额外信息
	Timestamp   time.Time              `json:"timestamp"`    // 告警时间
}

// SendAlert 发送告警给所有在线的运营人员
func (h *Hub) SendAlert(alert AlertData) {
	alert.Timestamp = time.Now()

	data, err := json.Marshal(alert)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal alert data")
		return
	}

	msg := Message{
		Type:      "alert",
		Data:      data,
		Timestamp: alert.Timestamp,
	}

	h.Broadcast(BroadcastMessage{
		ClientType: ClientTypeOperator,
		EntityID:   0, // 广播给所有运营人员
		Message:    msg,
	})

	log.Info().
		Str("alert_type", string(alert.AlertType)).
		Str("level", string(alert.Level)).
		Str("title", alert.Title).
		Int64("related_id", alert.RelatedID).
		Int("operator_clients", h.GetOnlineOperatorCount()).
		Msg("Alert sent to operators")
}

// Shutdown 关闭Hub
func (h *Hub) Shutdown() {
	log.Info().Msg("Shutting down WebSocket Hub")
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	// 关闭所有骑手连接
	for _, client := range h.drivers {
		client.closeOnce.Do(func() {
			close(client.send)
		})
	}

	// 关闭所有运营人员连接
	for _, client := range h.operators {
		client.closeOnce.Do(func() {
			close(client.send)
		})
	}
}
