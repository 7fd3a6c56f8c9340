package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/quickbite/dispatch/algorithm"
	"github.com/quickbite/dispatch/websocket"
	"github.com/rs/zerolog/log"
)

const (
	TaskBatchAllocate = "dispatch:batch_allocate"
)

// PayloadBatchAllocate 批量派单任务载荷
// MaxDistanceKm / MinRating 为 0 时使用默认筛选条件
type PayloadBatchAllocate struct {
	OrderIDs      []int64 `json:"order_ids"`
	MaxDistanceKm float64 `json:"max_distance_km,omitempty"`
	MinRating     float64 `json:"min_rating,omitempty"`
}

// BatchAllocateOutcome 单个订单的派单结果
type BatchAllocateOutcome struct {
	OrderID  int64  `json:"order_id"`
	Success  bool   `json:"success"`
	DriverID int64  `json:"driver_id,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// DistributeTaskBatchAllocate 分发批量派单任务
func (distributor *RedisTaskDistributor) DistributeTaskBatchAllocate(
	ctx context.Context,
	payload *PayloadBatchAllocate,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskBatchAllocate, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int("orders", len(payload.OrderIDs)).
		Msg("enqueued batch allocate task")

	return nil
}

// ProcessTaskBatchAllocate 处理批量派单任务
// 订单按载荷顺序逐个派出，相邻订单之间留出间隔；
// 同一骑手被前面的订单占用后，后面的订单自然落到其他人身上。
// 单个订单派不出去不算任务失败，结果汇总在日志里
func (processor *RedisTaskProcessor) ProcessTaskBatchAllocate(ctx context.Context, task *asynq.Task) error {
	var payload PayloadBatchAllocate
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Int("orders", len(payload.OrderIDs)).
		Msg("processing batch allocate task")

	// 载荷没带筛选条件时落回配置值
	opts := processor.allocOpts
	if payload.MaxDistanceKm > 0 {
		opts.MaxDistanceKm = payload.MaxDistanceKm
	}
	if payload.MinRating > 0 {
		opts.MinRating = payload.MinRating
	}

	outcomes := make([]BatchAllocateOutcome, 0, len(payload.OrderIDs))
	assigned := 0

	for i, orderID := range payload.OrderIDs {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(processor.batchDelay):
			}
		}

		result, err := processor.allocation.AutoAssignOrder(ctx, orderID, opts)
		if err != nil {
			// 基础设施故障，整个任务交给 asynq 重试
			return fmt.Errorf("auto assign order %d: %w", orderID, err)
		}

		outcome := BatchAllocateOutcome{
			OrderID:  orderID,
			Success:  result.Success,
			DriverID: result.DriverID,
			Reason:   result.Reason,
		}
		outcomes = append(outcomes, outcome)

		if result.Success {
			assigned++
			processor.pushAssignment(ctx, orderID, result)
		} else {
			log.Warn().
				Int64("order_id", orderID).
				Str("reason", result.Reason).
				Msg("order not assigned in batch")
		}
	}

	summary, _ := json.Marshal(outcomes)
	log.Info().
		Int("orders", len(payload.OrderIDs)).
		Int("assigned", assigned).
		Int("unassigned", len(payload.OrderIDs)-assigned).
		RawJSON("outcomes", summary).
		Msg("batch allocate task finished")

	return nil
}

// pushAssignment 通过 Redis Pub/Sub 将派单结果推给骑手端
func (processor *RedisTaskProcessor) pushAssignment(ctx context.Context, orderID int64, result algorithm.AllocationResult) {
	if processor.redisClient == nil || len(result.Scores) == 0 {
		return
	}

	data, err := json.Marshal(map[string]any{
		"order_id":                   orderID,
		"estimated_pickup_minutes":   result.Scores[0].EstimatedPickupMinutes,
		"estimated_delivery_minutes": result.Scores[0].EstimatedDeliveryMinutes,
	})
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("marshal assignment push failed")
		return
	}

	msg := websocket.Message{
		Type:      "assignment",
		Data:      data,
		Timestamp: time.Now(),
	}
	if err := websocket.PublishDriverPush(ctx, processor.redisClient, result.DriverID, msg); err != nil {
		// 推送失败不影响派单结果，骑手下次拉取仍能看到订单
		log.Error().Err(err).
			Int64("order_id", orderID).
			Int64("driver_id", result.DriverID).
			Msg("WebSocket push failed (non-critical)")
	}
}
