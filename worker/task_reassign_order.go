package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/quickbite/dispatch/websocket"
	"github.com/rs/zerolog/log"
)

const (
	TaskReassignOrder = "dispatch:reassign_order"
)

// PayloadReassignOrder 改派任务载荷
type PayloadReassignOrder struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason"`
}

// DistributeTaskReassignOrder 分发改派任务
func (distributor *RedisTaskDistributor) DistributeTaskReassignOrder(
	ctx context.Context,
	payload *PayloadReassignOrder,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskReassignOrder, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("order_id", payload.OrderID).
		Msg("enqueued reassign order task")

	return nil
}

// ProcessTaskReassignOrder 处理改派任务
// 释放当前骑手后立即重新派单；重新派单失败只发告警，
// 订单回到待派池由后续批量派单兜底
func (processor *RedisTaskProcessor) ProcessTaskReassignOrder(ctx context.Context, task *asynq.Task) error {
	var payload PayloadReassignOrder
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Int64("order_id", payload.OrderID).
		Str("reason", payload.Reason).
		Msg("processing reassign order task")

	result, err := processor.allocation.ReassignOrder(ctx, payload.OrderID, payload.Reason, processor.allocOpts)
	if err != nil {
		return fmt.Errorf("reassign order %d: %w", payload.OrderID, err)
	}

	if !result.Success {
		log.Warn().
			Int64("order_id", payload.OrderID).
			Str("reason", result.Reason).
			Msg("order released but not reallocated")
		processor.alertUnassigned(ctx, payload.OrderID, result.Reason)
		return nil
	}

	log.Info().
		Int64("order_id", payload.OrderID).
		Int64("driver_id", result.DriverID).
		Msg("order reassigned")
	processor.pushAssignment(ctx, payload.OrderID, result)

	return nil
}

// alertUnassigned 改派后仍无人可派时通知运营大盘
func (processor *RedisTaskProcessor) alertUnassigned(ctx context.Context, orderID int64, reason string) {
	if processor.redisClient == nil {
		return
	}

	alert := websocket.AlertData{
		AlertType:   websocket.AlertTypeAssignmentFailed,
		Level:       websocket.AlertLevelWarning,
		Title:       "order reassignment failed",
		Message:     reason,
		RelatedID:   orderID,
		RelatedType: "order",
		Timestamp:   time.Now(),
	}
	data, err := json.Marshal(alert)
	if err != nil {
		return
	}
	msg := websocket.Message{
		Type:      "alert",
		Data:      data,
		Timestamp: alert.Timestamp,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := processor.redisClient.Publish(ctx, "dispatch:operator:alerts", payload).Err(); err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("publish alert failed")
	}
}
