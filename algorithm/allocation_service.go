package algorithm

import (
	"context"
	"errors"
	"fmt"

	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/rs/zerolog/log"
)

// 业务失败原因（非算法层）
const (
	ReasonOrderNotFound     = "Order not found"
	ReasonOrderAlreadyTaken = "Order already assigned"
	ReasonOrderNotAssigned  = "Order has no assigned driver"
)

// AllocationService 派单服务
// 负责从数据库加载骑手池和统计快照，调用纯算法引擎评分，
// 并通过条件更新事务落库。评分本身不碰数据库
type AllocationService struct {
	store     db.Store
	allocator *DriverAllocator
	predictor *ETAPredictor
}

// NewAllocationService 创建派单服务
func NewAllocationService(store db.Store, config AllocationConfig) *AllocationService {
	return &AllocationService{
		store:     store,
		allocator: NewDriverAllocator(config),
		predictor: NewETAPredictor(DefaultETAConfig()),
	}
}

// Allocator exposes the underlying scoring engine
func (s *AllocationService) Allocator() *DriverAllocator {
	return s.allocator
}

// Predictor exposes the underlying ETA predictor
func (s *AllocationService) Predictor() *ETAPredictor {
	return s.predictor
}

// FindBestDriverForOrder 对订单执行一次纯评分，不产生任何写入
func (s *AllocationService) FindBestDriverForOrder(
	ctx context.Context,
	order db.Order,
	opts FindBestDriverOptions,
) (AllocationResult, error) {
	drivers, stats, err := s.loadDriverPool(ctx)
	if err != nil {
		return AllocationResult{}, err
	}
	return s.allocator.FindBestDriver(orderSnapshot(order), drivers, stats, opts), nil
}

// AutoAssignOrder 加载订单、评分并以条件更新方式落库
// 订单不存在/已被派出/无人可派均返回结构化失败而非 error；
// error 只用于数据库等基础设施故障
func (s *AllocationService) AutoAssignOrder(
	ctx context.Context,
	orderID int64,
	opts FindBestDriverOptions,
) (AllocationResult, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return AllocationResult{Success: false, Scores: []DriverScore{}, Reason: ReasonOrderNotFound}, nil
		}
		return AllocationResult{}, fmt.Errorf("get order: %w", err)
	}

	if order.DriverID.Valid {
		return AllocationResult{Success: false, Scores: []DriverScore{}, Reason: ReasonOrderAlreadyTaken}, nil
	}

	result, err := s.FindBestDriverForOrder(ctx, order, opts)
	if err != nil {
		return AllocationResult{}, err
	}
	if !result.Success {
		return result, nil
	}

	// 条件更新："仍未派出"才能写入，并发时输掉的一方拿到结构化失败
	_, err = s.store.AssignOrderTx(ctx, db.AssignOrderTxParams{
		OrderID:  orderID,
		DriverID: result.DriverID,
		Reason:   "auto",
	})
	if err != nil {
		if errors.Is(err, db.ErrOrderAlreadyAssigned) {
			return AllocationResult{Success: false, Scores: result.Scores, Reason: ReasonOrderAlreadyTaken}, nil
		}
		if errors.Is(err, db.ErrDriverNotAvailable) {
			// 评分和落库之间骑手下线了，按无人可派处理
			log.Warn().Int64("order_id", orderID).Int64("driver_id", result.DriverID).
				Msg("best driver went offline before assignment")
			return AllocationResult{Success: false, Scores: result.Scores, Reason: ReasonNoAvailableDrivers}, nil
		}
		return AllocationResult{}, fmt.Errorf("assign order tx: %w", err)
	}

	log.Info().
		Int64("order_id", orderID).
		Int64("driver_id", result.DriverID).
		Float64("score", result.Scores[0].TotalScore).
		Int("candidates", len(result.Scores)).
		Msg("order assigned")

	return result, nil
}

// ReassignOrder 释放当前派单并重新评分
// 上一位骑手默认不排除，由上升的当日单量自然降权
func (s *AllocationService) ReassignOrder(
	ctx context.Context,
	orderID int64,
	reason string,
	opts FindBestDriverOptions,
) (AllocationResult, error) {
	released, err := s.store.ReassignOrderTx(ctx, db.ReassignOrderTxParams{
		OrderID: orderID,
		Reason:  reason,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return AllocationResult{Success: false, Scores: []DriverScore{}, Reason: ReasonOrderNotFound}, nil
		}
		if errors.Is(err, db.ErrOrderNotAssigned) {
			return AllocationResult{Success: false, Scores: []DriverScore{}, Reason: ReasonOrderNotAssigned}, nil
		}
		return AllocationResult{}, fmt.Errorf("reassign order tx: %w", err)
	}

	log.Info().
		Int64("order_id", orderID).
		Int64("previous_driver_id", released.PreviousDriverID).
		Str("reason", reason).
		Msg("assignment released, reallocating")

	return s.AutoAssignOrder(ctx, orderID, opts)
}

// loadDriverPool 加载在线骑手快照与近30天统计
func (s *AllocationService) loadDriverPool(ctx context.Context) ([]DriverSnapshot, map[int64]DriverStats, error) {
	rows, err := s.store.ListAvailableDrivers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list available drivers: %w", err)
	}

	drivers := make([]DriverSnapshot, 0, len(rows))
	stats := make(map[int64]DriverStats, len(rows))
	for _, row := range rows {
		drivers = append(drivers, DriverSnapshotFromDB(row))

		st, err := s.loadDriverStats(ctx, row.ID)
		if err != nil {
			return nil, nil, err
		}
		stats[row.ID] = st
	}
	return drivers, stats, nil
}

func (s *AllocationService) loadDriverStats(ctx context.Context, driverID int64) (DriverStats, error) {
	var st DriverStats

	acceptance, err := s.store.GetDriverAcceptanceStats(ctx, driverID)
	if err != nil {
		return st, fmt.Errorf("get acceptance stats: %w", err)
	}
	if acceptance.Offered > 0 {
		st.HasAcceptanceData = true
		st.AcceptanceRate = float64(acceptance.Accepted) / float64(acceptance.Offered)
	}

	speed, err := s.store.GetDriverDeliverySpeed(ctx, driverID)
	if err != nil {
		return st, fmt.Errorf("get delivery speed: %w", err)
	}
	if speed.Completed > 0 {
		st.HasDeliveryData = true
		st.AvgDeliveryMinutes = speed.AvgMinutes
	}

	today, err := s.store.CountDriverOrdersToday(ctx, driverID)
	if err != nil {
		return st, fmt.Errorf("count orders today: %w", err)
	}
	st.OrdersToday = int(today)

	return st, nil
}

// DriverSnapshotFromDB 将数据库行转换为算法快照
func DriverSnapshotFromDB(row db.Driver) DriverSnapshot {
	snapshot := DriverSnapshot{
		ID:              row.ID,
		VehicleType:     VehicleType(row.VehicleType),
		TotalDeliveries: row.TotalDeliveries,
		Status:          DriverStatus(row.Status),
		IsActive:        row.IsActive,
		IsVerified:      row.IsVerified,
	}

	if v, err := row.Rating.Float64Value(); err == nil && v.Valid {
		snapshot.Rating = v.Float64
	}

	if row.CurrentLatitude.Valid && row.CurrentLongitude.Valid {
		snapshot.Location = &Location{
			Latitude:  row.CurrentLatitude.Float64,
			Longitude: row.CurrentLongitude.Float64,
		}
	}
	return snapshot
}

// orderSnapshot 将数据库订单转换为算法快照
func orderSnapshot(row db.Order) OrderSnapshot {
	return OrderSnapshot{
		ID:         row.ID,
		MerchantID: row.MerchantID,
		PickupLocation: Location{
			Latitude:  row.PickupLatitude,
			Longitude: row.PickupLongitude,
		},
		DeliveryLocation: Location{
			Latitude:  row.DeliveryLatitude,
			Longitude: row.DeliveryLongitude,
		},
		TotalAmount: row.TotalAmount,
		IsCOD:       row.IsCod,
		DeliveryFee: row.DeliveryFee,
		Priority:    OrderPriority(row.Priority),
	}
}
