package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
)

// ErrRecordNotFound 查询无结果
var ErrRecordNotFound = pgx.ErrNoRows

// ErrOrderAlreadyAssigned 订单已被其他骑手占用
// AssignOrderDriver 带 driver_id IS NULL 条件，并发派单时只有一个事务能更新成功
var ErrOrderAlreadyAssigned = errors.New("order already assigned to a driver")

// ErrDriverNotAvailable 骑手不在可接单状态
var ErrDriverNotAvailable = errors.New("driver is not available")

// ErrOrderNotOwnedByDriver 订单未派给该骑手，取货/送达确认被拒绝
var ErrOrderNotOwnedByDriver = errors.New("order is not assigned to this driver")

// ErrOrderNotAssigned 订单当前没有骑手，无法释放改派
var ErrOrderNotAssigned = errors.New("order has no assigned driver")

// ErrorCode returns the Postgres error code if err is a PgError
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
