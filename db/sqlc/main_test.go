package db

import (
	"context"
	"log"
	"math/big"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var testStore Store

func TestMain(m *testing.M) {
	// 使用测试数据库连接
	testDBSource := os.Getenv("TEST_DB_SOURCE")
	if testDBSource == "" {
		// 显式走 unix socket，避免空 host 被解析成 TCP/localhost 导致密码认证失败
		testDBSource = "postgresql:///dispatch_dev?sslmode=disable&host=/var/run/postgresql"
	}

	migrationURL := os.Getenv("TEST_MIGRATION_URL")
	if migrationURL == "" {
		// 当前文件位于 db/sqlc 下，migration 目录在 db/migration
		migrationURL = "file://../migration"
	}

	mig, err := migrate.New(migrationURL, testDBSource)
	if err != nil {
		log.Fatal("cannot create migrate instance:", err)
	}
	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("cannot run migrate up:", err)
	}

	connPool, err := pgxpool.New(context.Background(), testDBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testStore = NewStore(connPool)

	os.Exit(m.Run())
}

// numericFromFloat 构造 pgtype.Numeric，保留 6 位小数
func numericFromFloat(f float64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(f * 1e6)),
		Exp:   -6,
		Valid: true,
	}
}

// numericToFloat 读取 pgtype.Numeric 的浮点值
func numericToFloat(t *testing.T, n pgtype.Numeric) float64 {
	t.Helper()
	v, err := n.Float64Value()
	if err != nil || !v.Valid {
		t.Fatalf("invalid numeric value: %v", err)
	}
	return v.Float64
}
