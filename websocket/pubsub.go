package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	// Redis频道前缀
	channelPrefixDriver   = "dispatch:driver:"        // dispatch:driver:{driver_id}
	channelOperatorAlerts = "dispatch:operator:alerts" // 调度告警频道
)

// PubSubManager 管理Redis Pub/Sub，用于跨进程推送
// worker 进程产生的派单/改派消息经 Redis 转发到持有连接的 API 进程
type PubSubManager struct {
	redisClient *redis.Client
	hub         *Hub
	ctx         context.Context
	cancel      context.CancelFunc
}

// DispatchPushMessage WebSocket推送消息（通过Redis传输）
type DispatchPushMessage struct {
	DriverID int64   `json:"driver_id"`
	Message  Message `json:"message"`
}

// NewPubSubManager 创建PubSub管理器
func NewPubSubManager(redisAddr string, redisPassword string, hub *Hub) (*PubSubManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	manager := &PubSubManager{
		redisClient: client,
		hub:         hub,
		ctx:         ctx,
		cancel:      cancel,
	}

	return manager, nil
}

// Start 启动订阅（监听所有骑手推送和调度告警频道）
func (m *PubSubManager) Start() {
	// 订阅模式：dispatch:driver:* 和 dispatch:operator:alerts
	pubsub := m.redisClient.PSubscribe(m.ctx, channelPrefixDriver+"*", channelOperatorAlerts)

	go func() {
		defer pubsub.Close()

		log.Info().Msg("WebSocket PubSub started, listening for dispatch push requests")

		for {
			select {
			case <-m.ctx.Done():
				log.Info().Msg("WebSocket PubSub stopped")
				return
			default:
				msg, err := pubsub.ReceiveMessage(m.ctx)
				if err != nil {
					if m.ctx.Err() != nil {
						return
					}
					log.Error().Err(err).Msg("receive pubsub message failed")
					time.Sleep(time.Second)
					continue
				}

				m.handlePubSubMessage(msg.Channel, msg.Payload)
			}
		}
	}()
}

// Stop 停止订阅
func (m *PubSubManager) Stop() {
	m.cancel()
	m.redisClient.Close()
}

// handlePubSubMessage 处理接收到的消息
func (m *PubSubManager) handlePubSubMessage(channel string, payload string) {
	// 调度告警消息直接广播给所有运营人员
	if channel == channelOperatorAlerts {
		m.handleAlertMessage(payload)
		return
	}

	var pushMsg DispatchPushMessage
	if err := json.Unmarshal([]byte(payload), &pushMsg); err != nil {
		log.Error().Err(err).Str("payload", payload).Msg("unmarshal pubsub message failed")
		return
	}

	if m.hub.IsDriverOnline(pushMsg.DriverID) {
		m.hub.SendToDriver(pushMsg.DriverID, pushMsg.Message)
		log.Debug().
			Int64("driver_id", pushMsg.DriverID).
			Str("type", pushMsg.Message.Type).
			Msg("pushed dispatch message to driver via WebSocket")
	} else {
		log.Debug().
			Int64("driver_id", pushMsg.DriverID).
			Msg("driver offline, skip WebSocket push")
	}
}

// handleAlertMessage 处理告警消息并广播给运营人员
func (m *PubSubManager) handleAlertMessage(payload string) {
	var wsMessage struct {
		Type      string          `json:"type"`
		Data      json.RawMessage `json:"data"`
		Timestamp time.Time       `json:"timestamp"`
	}
	if err := json.Unmarshal([]byte(payload), &wsMessage); err != nil {
		log.Error().Err(err).Str("payload", payload).Msg("unmarshal alert message failed")
		return
	}

	msg := Message{
		Type:      wsMessage.Type,
		Data:      wsMessage.Data,
		Timestamp: wsMessage.Timestamp,
	}

	// 广播给所有在线的运营人员
	m.hub.Broadcast(BroadcastMessage{
		ClientType: ClientTypeOperator,
		EntityID:   0,
		Message:    msg,
	})

	log.Info().
		Str("type", wsMessage.Type).
		Int("operator_clients", m.hub.GetOnlineOperatorCount()).
		Msg("alert broadcasted to operators")
}

// PublishDriverPush 发布骑手推送请求（由worker调用）
func PublishDriverPush(ctx context.Context, redisClient *redis.Client, driverID int64, message Message) error {
	pushMsg := DispatchPushMessage{
		DriverID: driverID,
		Message:  message,
	}

	payload, err := json.Marshal(pushMsg)
	if err != nil {
		return err
	}

	channel := fmt.Sprintf("%s%d", channelPrefixDriver, driverID)
	return redisClient.Publish(ctx, channel, payload).Err()
}
