package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	hubWait = 2 * time.Second
	hubTick = 5 * time.Millisecond
)

// startHub 启动一个测试用Hub，测试结束时自动关闭
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(context.Background())
	go hub.Run()
	t.Cleanup(hub.Shutdown)
	return hub
}

// connectDriver 注册一个骑手连接并等待Hub处理完成
func connectDriver(t *testing.T, hub *Hub, driverID int64, buffer int) *Client {
	t.Helper()
	client := &Client{
		info: ClientInfo{ClientType: ClientTypeDriver, EntityID: driverID},
		hub:  hub,
		send: make(chan Message, buffer),
		done: make(chan struct{}),
	}
	hub.Register(client)
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.drivers[driverID] == client
	}, hubWait, hubTick)
	return client
}

// connectOperator 注册一个运营端连接并等待Hub处理完成
func connectOperator(t *testing.T, hub *Hub, operatorID int64) *Client {
	t.Helper()
	client := &Client{
		info: ClientInfo{ClientType: ClientTypeOperator, EntityID: operatorID},
		hub:  hub,
		send: make(chan Message, 256),
		done: make(chan struct{}),
	}
	hub.Register(client)
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.operators[operatorID] == client
	}, hubWait, hubTick)
	return client
}

// assignmentMessage 构造一条派单推送
func assignmentMessage(orderID int64) Message {
	data, _ := json.Marshal(map[string]int64{"order_id": orderID})
	return Message{
		Type:      "assignment",
		Data:      data,
		Timestamp: time.Now(),
	}
}

// recvMessage 从客户端send通道取一条消息
func recvMessage(t *testing.T, client *Client) Message {
	t.Helper()
	select {
	case msg := <-client.send:
		return msg
	case <-time.After(hubWait):
		t.Fatal("no message delivered to client")
		return Message{}
	}
}

func TestNewHub(t *testing.T) {
	hub := NewHub(context.Background())

	require.NotNil(t, hub.drivers)
	require.NotNil(t, hub.operators)
	require.NotNil(t, hub.register)
	require.NotNil(t, hub.unregister)
	require.NotNil(t, hub.broadcast)
	require.Zero(t, hub.GetOnlineDriverCount())
	require.Zero(t, hub.GetOnlineOperatorCount())
}

func TestHubDriverLifecycle(t *testing.T) {
	hub := startHub(t)

	driver := connectDriver(t, hub, 100, 256)
	require.True(t, hub.IsDriverOnline(100))
	require.Equal(t, 1, hub.GetOnlineDriverCount())

	hub.Unregister(driver)
	require.Eventually(t, func() bool {
		return !hub.IsDriverOnline(100)
	}, hubWait, hubTick)
	require.Zero(t, hub.GetOnlineDriverCount())

	// 注销后send通道被关闭，WritePump随之退出
	_, open := <-driver.send
	require.False(t, open)
}

func TestHubReconnectReplacesOldConnection(t *testing.T) {
	hub := startHub(t)

	// 骑手掉线重连，旧连接被顶掉
	old := connectDriver(t, hub, 100, 256)
	replacement := connectDriver(t, hub, 100, 256)

	select {
	case <-old.done:
	case <-time.After(hubWait):
		t.Fatal("stale connection was not told to close")
	}

	require.Equal(t, 1, hub.GetOnlineDriverCount())

	// 旧连接的ReadPump退出时会注销自己，不能误删新连接
	hub.Unregister(old)
	require.Never(t, func() bool {
		return !hub.IsDriverOnline(100)
	}, 200*time.Millisecond, hubTick)

	// 派单仍然送达新连接
	hub.SendToDriver(100, assignmentMessage(55))
	require.Equal(t, "assignment", recvMessage(t, replacement).Type)
}

func TestHubSendToDriver(t *testing.T) {
	hub := startHub(t)

	driver := connectDriver(t, hub, 100, 256)
	bystander := connectDriver(t, hub, 200, 256)

	hub.SendToDriver(100, assignmentMessage(123))

	msg := recvMessage(t, driver)
	require.Equal(t, "assignment", msg.Type)

	var push struct {
		OrderID int64 `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &push))
	require.Equal(t, int64(123), push.OrderID)

	// 其他骑手不应收到
	require.Empty(t, bystander.send)
}

func TestHubBroadcastToAllDrivers(t *testing.T) {
	hub := startHub(t)

	drivers := []*Client{
		connectDriver(t, hub, 100, 256),
		connectDriver(t, hub, 200, 256),
		connectDriver(t, hub, 300, 256),
	}
	require.Equal(t, 3, hub.GetOnlineDriverCount())

	hub.BroadcastToAllDrivers(Message{Type: "system_notice", Timestamp: time.Now()})

	for _, driver := range drivers {
		require.Equal(t, "system_notice", recvMessage(t, driver).Type)
	}
}

func TestHubBroadcastToDrivers(t *testing.T) {
	hub := startHub(t)

	inZone1 := connectDriver(t, hub, 100, 256)
	inZone2 := connectDriver(t, hub, 200, 256)
	outOfZone := connectDriver(t, hub, 300, 256)

	// 按区域推送新订单，只发给圈定的骑手
	hub.BroadcastToDrivers([]int64{100, 200}, Message{Type: "new_order_nearby", Timestamp: time.Now()})

	require.Equal(t, "new_order_nearby", recvMessage(t, inZone1).Type)
	require.Equal(t, "new_order_nearby", recvMessage(t, inZone2).Type)
	require.Empty(t, outOfZone.send)
}

func TestHubGetOnlineDriverIDs(t *testing.T) {
	hub := startHub(t)

	want := []int64{100, 200, 300}
	for _, id := range want {
		connectDriver(t, hub, id, 256)
	}

	require.ElementsMatch(t, want, hub.GetOnlineDriverIDs())
}

func TestHubSendAlertToOperators(t *testing.T) {
	hub := startHub(t)

	operator := connectOperator(t, hub, 7)
	require.Equal(t, 1, hub.GetOnlineOperatorCount())

	hub.SendAlert(AlertData{
		AlertType:   AlertTypeAssignmentFailed,
		Level:       AlertLevelWarning,
		Title:       "order unassigned",
		RelatedID:   42,
		RelatedType: "order",
	})

	msg := recvMessage(t, operator)
	require.Equal(t, "alert", msg.Type)

	var alert AlertData
	require.NoError(t, json.Unmarshal(msg.Data, &alert))
	require.Equal(t, AlertTypeAssignmentFailed, alert.AlertType)
	require.Equal(t, AlertLevelWarning, alert.Level)
	require.Equal(t, int64(42), alert.RelatedID)
	require.False(t, alert.Timestamp.IsZero())
}

func TestHubConcurrentRegisterUnregister(t *testing.T) {
	hub := startHub(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()

			client := &Client{
				info: ClientInfo{ClientType: ClientTypeDriver, EntityID: id},
				hub:  hub,
				send: make(chan Message, 256),
				done: make(chan struct{}),
			}

			hub.Register(client)
			_ = hub.IsDriverOnline(id)
			_ = hub.GetOnlineDriverCount()
			hub.SendToDriver(id, assignmentMessage(id))
			hub.Unregister(client)
		}(int64(i))
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return hub.GetOnlineDriverCount() == 0
	}, hubWait, hubTick)
}

func TestHubDropsWhenSendBufferFull(t *testing.T) {
	hub := startHub(t)

	// 慢客户端：缓冲1条，后续消息直接丢弃而不是阻塞Hub
	slow := connectDriver(t, hub, 100, 1)

	for i := int64(0); i < 10; i++ {
		hub.SendToDriver(100, assignmentMessage(i))
	}

	require.Eventually(t, func() bool {
		return len(slow.send) == 1
	}, hubWait, hubTick)
	require.True(t, hub.IsDriverOnline(100))
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub := NewHub(context.Background())
	go hub.Run()

	driver := connectDriver(t, hub, 100, 256)
	operator := connectOperator(t, hub, 7)

	hub.Shutdown()

	_, open := <-driver.send
	require.False(t, open, "driver send channel should be closed after shutdown")
	_, open = <-operator.send
	require.False(t, open, "operator send channel should be closed after shutdown")
}
