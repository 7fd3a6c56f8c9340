package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskBatchAllocate 分发批量派单任务
	DistributeTaskBatchAllocate(
		ctx context.Context,
		payload *PayloadBatchAllocate,
		opts ...asynq.Option,
	) error

	// DistributeTaskReassignOrder 分发改派任务
	DistributeTaskReassignOrder(
		ctx context.Context,
		payload *PayloadReassignOrder,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
