package api

import (
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericFromFloat 将 float64 转换为 pgtype.Numeric，保留6位小数
func numericFromFloat(f float64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(f * 1e6)),
		Exp:   -6,
		Valid: true,
	}
}

// parseNumericToFloat 将 pgtype.Numeric 转换为 float64
func parseNumericToFloat(n pgtype.Numeric) (float64, error) {
	if !n.Valid {
		return 0, fmt.Errorf("numeric is not valid")
	}

	f, err := n.Float64Value()
	if err != nil {
		return 0, err
	}
	return f.Float64, nil
}
