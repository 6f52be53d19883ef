package repository

import (
	"database/sql"
	"io"
	"testing"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/Danzskrtt/Health-Point-Management-System/pkg/db"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a private in-memory database with foreign keys on.
// MaxOpenConns(1) keeps the pool on the single connection that owns the
// in-memory schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	require.NoError(t, db.InitSchema(conn))
	t.Cleanup(func() { conn.Close() })
	return conn
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func seedProduct(t *testing.T, conn *sql.DB, id int, name string, price float64, stock int) {
	t.Helper()
	seedProductAt(t, conn, id, name, price, stock, 0)
}

func seedProductAt(t *testing.T, conn *sql.DB, id int, name string, price float64, stock int, dateAdded int64) {
	t.Helper()
	_, err := conn.Exec(
		`INSERT INTO meds_product (product_id, name, category, price, stock, status, image_path, date_added)
         VALUES (?, ?, 'Antibiotic', ?, ?, 'Available', NULL, ?)`,
		id, name, price, stock, dateAdded,
	)
	require.NoError(t, err)
}

func productStock(t *testing.T, conn *sql.DB, id int) int {
	t.Helper()
	var stock int
	require.NoError(t, conn.QueryRow(`SELECT stock FROM meds_product WHERE product_id = ?`, id).Scan(&stock))
	return stock
}

func countRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()
	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
	return count
}

func testOrder(items ...domain.OrderItem) *domain.Order {
	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}
	return &domain.Order{
		OrderID:       "ORD-101",
		CustomerName:  "Juan Dela Cruz",
		PaymentMethod: "Cash",
		Status:        domain.StatusCompleted,
		TotalAmount:   total,
		OrderDate:     "2026-08-30",
		OrderTime:     "14:05:00",
		Items:         items,
	}
}
