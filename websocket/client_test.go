package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newInboundTestClient(clientType ClientType, entityID int64) *Client {
	return &Client{
		info: ClientInfo{ClientType: clientType, EntityID: entityID},
		hub:  NewHub(context.Background()),
		send: make(chan Message, 8),
		done: make(chan struct{}),
	}
}

func TestNewClient(t *testing.T) {
	hub := NewHub(context.Background())
	info := ClientInfo{ClientType: ClientTypeDriver, EntityID: 100}

	client := NewClient(hub, nil, info)

	require.Equal(t, info, client.info)
	require.Same(t, hub, client.hub)
	require.NotNil(t, client.send)
	require.NotNil(t, client.done)
}

func TestClientHandleAssignmentAck(t *testing.T) {
	driver := newInboundTestClient(ClientTypeDriver, 100)

	ack, err := json.Marshal(assignmentAck{OrderID: 123})
	require.NoError(t, err)

	// 合法确认、缺字段、坏JSON都不应panic或阻塞读循环
	driver.handleInbound(Message{Type: inboundAssignmentAck, Data: ack, Timestamp: time.Now()})
	driver.handleInbound(Message{Type: inboundAssignmentAck, Data: json.RawMessage(`{}`), Timestamp: time.Now()})
	driver.handleInbound(Message{Type: inboundAssignmentAck, Data: json.RawMessage(`not json`), Timestamp: time.Now()})
}

func TestClientAssignmentAckFromOperator(t *testing.T) {
	// 运营端没有派单可确认，消息被忽略而不是解析
	operator := newInboundTestClient(ClientTypeOperator, 7)

	ack, err := json.Marshal(assignmentAck{OrderID: 123})
	require.NoError(t, err)

	operator.handleInbound(Message{Type: inboundAssignmentAck, Data: ack, Timestamp: time.Now()})
}

func TestClientHandleUnknownInbound(t *testing.T) {
	driver := newInboundTestClient(ClientTypeDriver, 100)

	// 未知类型只记日志，连接保持
	driver.handleInbound(Message{Type: "location_update", Timestamp: time.Now()})

	select {
	case <-driver.done:
		t.Fatal("unknown inbound type must not close the connection")
	default:
	}
}

func TestHeartbeatIntervals(t *testing.T) {
	// ping必须在心跳超时之前发出，否则健康连接会被误判掉线
	require.Less(t, pingInterval, heartbeatWait)
	require.Positive(t, writeTimeout)
}
