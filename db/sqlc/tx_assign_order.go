package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 派单事务 ====================

// AssignOrderTxParams contains the input parameters for assigning an order
type AssignOrderTxParams struct {
	OrderID  int64
	DriverID int64
	Reason   string // auto / manual / reassign
}

// AssignOrderTxResult contains the result of the assign order transaction
type AssignOrderTxResult struct {
	Order      Order
	Driver     Driver
	Assignment DriverAssignment
}

// AssignOrderTx executes all operations for assigning an order in a single transaction:
// 1. Lock driver row with FOR UPDATE
// 2. Verify driver is online and active
// 3. Conditionally write driver_id (only if order is still unassigned)
// 4. Create assignment record
// 5. Flip driver to on_delivery
func (store *SQLStore) AssignOrderTx(ctx context.Context, arg AssignOrderTxParams) (AssignOrderTxResult, error) {
	var result AssignOrderTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 使用 FOR UPDATE 锁定骑手行，获取最新状态
		result.Driver, err = q.GetDriverForUpdate(ctx, arg.DriverID)
		if err != nil {
			return fmt.Errorf("get driver for update: %w", err)
		}

		// 2. 事务内再次校验骑手状态，避免读到过期快照
		if result.Driver.Status != "online" || !result.Driver.IsActive {
			return ErrDriverNotAvailable
		}

		// 3. 条件更新：只有 driver_id 仍为空时才能写入
		// 并发派单时只有一个事务会返回行，其余拿到 ErrNoRows
		result.Order, err = q.AssignOrderDriver(ctx, AssignOrderDriverParams{
			ID:       arg.OrderID,
			DriverID: pgtype.Int8{Int64: arg.DriverID, Valid: true},
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrOrderAlreadyAssigned
			}
			return fmt.Errorf("assign order driver: %w", err)
		}

		// 4. 创建派单记录
		result.Assignment, err = q.CreateAssignment(ctx, CreateAssignmentParams{
			OrderID:  arg.OrderID,
			DriverID: arg.DriverID,
			Status:   "assigned",
			Reason:   pgtype.Text{String: arg.Reason, Valid: arg.Reason != ""},
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		// 5. 骑手进入配送状态
		result.Driver, err = q.UpdateDriverStatus(ctx, UpdateDriverStatusParams{
			ID:     arg.DriverID,
			Status: "on_delivery",
		})
		if err != nil {
			return fmt.Errorf("update driver status: %w", err)
		}

		return nil
	})

	return result, err
}
