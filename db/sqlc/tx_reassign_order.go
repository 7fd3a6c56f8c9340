package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 改派事务 ====================

// ReassignOrderTxParams contains the input parameters for releasing an assignment
type ReassignOrderTxParams struct {
	OrderID int64
	Reason  string
}

// ReassignOrderTxResult contains the result of the reassign order transaction
type ReassignOrderTxResult struct {
	Order            Order
	PreviousDriverID int64
}

// ReassignOrderTx releases the current assignment so the order can be allocated again:
// 1. Lock order row with FOR UPDATE
// 2. Clear driver_id and reset status to pending
// 3. Free the previous driver back to online
// 4. Mark the assignment record as reassigned with the reason
//
// 重新派单由调用方在事务提交后执行；上一位骑手不做硬排除，
// 其今日单量上升后评分自然靠后
func (store *SQLStore) ReassignOrderTx(ctx context.Context, arg ReassignOrderTxParams) (ReassignOrderTxResult, error) {
	var result ReassignOrderTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		// 1. 锁定订单行
		order, err := q.GetOrderForUpdate(ctx, arg.OrderID)
		if err != nil {
			return fmt.Errorf("get order for update: %w", err)
		}

		if !order.DriverID.Valid {
			return ErrOrderNotAssigned
		}
		result.PreviousDriverID = order.DriverID.Int64

		// 2. 清除派单，状态回到待派
		result.Order, err = q.ClearOrderDriver(ctx, arg.OrderID)
		if err != nil {
			return fmt.Errorf("clear order driver: %w", err)
		}

		// 3. 上一位骑手恢复可接单
		_, err = q.UpdateDriverStatus(ctx, UpdateDriverStatusParams{
			ID:     result.PreviousDriverID,
			Status: "online",
		})
		if err != nil {
			return fmt.Errorf("update driver status: %w", err)
		}

		// 4. 派单记录标记为已改派
		assignment, err := q.GetLatestAssignmentForOrder(ctx, arg.OrderID)
		if err != nil {
			return fmt.Errorf("get latest assignment: %w", err)
		}
		_, err = q.UpdateAssignmentStatus(ctx, UpdateAssignmentStatusParams{
			ID:     assignment.ID,
			Status: "reassigned",
			Reason: pgtype.Text{String: arg.Reason, Valid: arg.Reason != ""},
		})
		if err != nil {
			return fmt.Errorf("update assignment status: %w", err)
		}

		return nil
	})

	return result, err
}
