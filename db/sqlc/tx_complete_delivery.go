package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 确认送达事务 ====================

// CompleteDeliveryTxParams contains the input parameters for completing a delivery
type CompleteDeliveryTxParams struct {
	OrderID  int64
	DriverID int64
}

// CompleteDeliveryTxResult contains the result of the complete delivery transaction
type CompleteDeliveryTxResult struct {
	Order  Order
	Driver Driver
}

// CompleteDeliveryTx executes all operations for completing a delivery in a single transaction:
// 1. Lock driver row with FOR UPDATE
// 2. Mark the order delivered (guarded by driver_id)
// 3. Increment the driver's lifetime tally
// 4. Free the driver back to online
// 5. Mark the assignment record completed
func (store *SQLStore) CompleteDeliveryTx(ctx context.Context, arg CompleteDeliveryTxParams) (CompleteDeliveryTxResult, error) {
	var result CompleteDeliveryTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 锁定骑手行
		_, err = q.GetDriverForUpdate(ctx, arg.DriverID)
		if err != nil {
			return fmt.Errorf("get driver for update: %w", err)
		}

		// 2. 更新订单为已送达，driver_id 条件防止他人误确认
		result.Order, err = q.MarkOrderDelivered(ctx, MarkOrderDeliveredParams{
			ID:       arg.OrderID,
			DriverID: pgtype.Int8{Int64: arg.DriverID, Valid: true},
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrOrderNotOwnedByDriver
			}
			return fmt.Errorf("mark order delivered: %w", err)
		}

		// 3. 累计完成单数
		result.Driver, err = q.IncrementDriverDeliveries(ctx, arg.DriverID)
		if err != nil {
			return fmt.Errorf("increment driver deliveries: %w", err)
		}

		// 4. 骑手恢复可接单
		result.Driver, err = q.UpdateDriverStatus(ctx, UpdateDriverStatusParams{
			ID:     arg.DriverID,
			Status: "online",
		})
		if err != nil {
			return fmt.Errorf("update driver status: %w", err)
		}

		// 5. 派单记录完结
		assignment, err := q.GetLatestAssignmentForOrder(ctx, arg.OrderID)
		if err != nil {
			return fmt.Errorf("get latest assignment: %w", err)
		}
		_, err = q.UpdateAssignmentStatus(ctx, UpdateAssignmentStatusParams{
			ID:     assignment.ID,
			Status: "completed",
			Reason: assignment.Reason,
		})
		if err != nil {
			return fmt.Errorf("update assignment status: %w", err)
		}

		return nil
	})

	return result, err
}
