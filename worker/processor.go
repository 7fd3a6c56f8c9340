package worker

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/quickbite/dispatch/algorithm"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/rs/zerolog/log"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// 批量派单时相邻订单之间的默认间隔
const defaultBatchAllocateDelay = 200 * time.Millisecond

// TaskProcessor 任务处理接口
type TaskProcessor interface {
	Start() error
	Shutdown()
	// ProcessTaskBatchAllocate 处理批量派单任务
	ProcessTaskBatchAllocate(ctx context.Context, task *asynq.Task) error
	// ProcessTaskReassignOrder 处理改派任务
	ProcessTaskReassignOrder(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server      *asynq.Server
	store       db.Store
	allocation  *algorithm.AllocationService
	redisClient *redis.Client                   // Redis客户端（用于Pub/Sub推送派单消息）
	batchDelay  time.Duration                   // 批量派单的逐单间隔
	allocOpts   algorithm.FindBestDriverOptions // 配置文件里的派单兜底条件
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	batchDelay time.Duration,
	allocOpts algorithm.FindBestDriverOptions,
) TaskProcessor {
	logger := NewLogger()
	redis.SetLogger(logger)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	// 创建Redis客户端（用于Pub/Sub）
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisOpt.Addr,
		Password: redisOpt.Password,
		DB:       redisOpt.DB,
	})

	if batchDelay <= 0 {
		batchDelay = defaultBatchAllocateDelay
	}

	return &RedisTaskProcessor{
		server:      server,
		store:       store,
		allocation:  algorithm.NewAllocationService(store, algorithm.DefaultAllocationConfig()),
		redisClient: redisClient,
		batchDelay:  batchDelay,
		allocOpts:   allocOpts,
	}
}

// NewTestTaskProcessor 创建用于测试的处理器实例（不需要Redis连接）
func NewTestTaskProcessor(store db.Store) *RedisTaskProcessor {
	return NewTestTaskProcessorWithOptions(store, algorithm.FindBestDriverOptions{})
}

// NewTestTaskProcessorWithOptions 带派单兜底条件的测试处理器
func NewTestTaskProcessorWithOptions(store db.Store, allocOpts algorithm.FindBestDriverOptions) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store:      store,
		allocation: algorithm.NewAllocationService(store, algorithm.DefaultAllocationConfig()),
		batchDelay: time.Millisecond,
		allocOpts:  allocOpts,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	// 注册任务处理器
	mux.HandleFunc(TaskBatchAllocate, processor.ProcessTaskBatchAllocate)
	mux.HandleFunc(TaskReassignOrder, processor.ProcessTaskReassignOrder)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
