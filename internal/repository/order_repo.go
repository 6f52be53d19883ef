package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/sirupsen/logrus"
)

type sqliteOrderRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewSQLiteOrderRepository(db *sql.DB, logger *logrus.Logger) domain.OrderRepository {
	return &sqliteOrderRepository{
		db:  db,
		log: logger,
	}
}

// PlaceOrder writes the order header, one row per cart line and the
// matching stock decrements in a single transaction. Any failure rolls
// everything back: no partial order, no partial stock change.
func (r *sqliteOrderRepository) PlaceOrder(order *domain.Order) (placed *domain.Order, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		r.log.Errorf("Failed to begin transaction: %v", err)
		return nil, fmt.Errorf("could not start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			r.log.Error("Recovered from panic, rolling back transaction")
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			r.log.Warnf("Rolling back order %s due to error: %v", order.OrderID, err)
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Errorf("Failed to rollback transaction: %v", rbErr)
			}
		} else {
			if cErr := tx.Commit(); cErr != nil {
				r.log.Errorf("Failed to commit order %s: %v", order.OrderID, cErr)
				placed = nil
				err = fmt.Errorf("failed to commit transaction: %w", cErr)
			}
		}
	}()

	orderQuery := `
        INSERT INTO orders (order_id, customer_name, payment_method, order_status, total_amount, order_date, order_time)
        VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.Exec(orderQuery,
		order.OrderID,
		order.CustomerName,
		order.PaymentMethod,
		order.Status,
		order.TotalAmount,
		order.OrderDate,
		order.OrderTime,
	)
	if err != nil {
		r.log.Errorf("Failed to insert order %s: %v", order.OrderID, err)
		return nil, fmt.Errorf("could not create order entry: %w", err)
	}

	itemStmt, err := tx.Prepare(`
        INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, total_price)
        VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		r.log.Errorf("Failed to prepare order item statement: %v", err)
		return nil, fmt.Errorf("could not prepare item statement: %w", err)
	}
	defer itemStmt.Close()

	stockStmt, err := tx.Prepare(`UPDATE meds_product SET stock = stock - ? WHERE product_id = ?`)
	if err != nil {
		r.log.Errorf("Failed to prepare stock update statement: %v", err)
		return nil, fmt.Errorf("could not prepare stock statement: %w", err)
	}
	defer stockStmt.Close()

	for i := range order.Items {
		item := &order.Items[i]

		_, err = itemStmt.Exec(order.OrderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.TotalPrice)
		if err != nil {
			r.log.Errorf("Failed to insert order item (product_id: %d) for order %s: %v", item.ProductID, order.OrderID, err)
			return nil, fmt.Errorf("could not create order item (product_id: %d): %w", item.ProductID, err)
		}

		var result sql.Result
		result, err = stockStmt.Exec(item.Quantity, item.ProductID)
		if err != nil {
			r.log.Errorf("Failed to decrement stock for product %d (order %s): %v", item.ProductID, order.OrderID, err)
			return nil, fmt.Errorf("could not update stock (product_id: %d): %w", item.ProductID, err)
		}
		var rowsAffected int64
		rowsAffected, err = result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("could not confirm stock update (product_id: %d): %w", item.ProductID, err)
		}
		if rowsAffected == 0 {
			err = fmt.Errorf("product with id %d not found for stock update", item.ProductID)
			r.log.Warnf("Order %s references missing product %d", order.OrderID, item.ProductID)
			return nil, err
		}
	}

	r.log.Infof("Order %s created successfully with %d items.", order.OrderID, len(order.Items))
	return order, nil
}

func (r *sqliteOrderRepository) GetOrderByID(id string) (*domain.Order, error) {
	order := &domain.Order{}
	orderQuery := `
        SELECT order_id, customer_name, payment_method, order_status, total_amount, order_date, order_time
        FROM orders
        WHERE order_id = ?`
	err := r.db.QueryRow(orderQuery, id).Scan(
		&order.OrderID,
		&order.CustomerName,
		&order.PaymentMethod,
		&order.Status,
		&order.TotalAmount,
		&order.OrderDate,
		&order.OrderTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Order with ID %s not found", id)
			return nil, fmt.Errorf("order with id %s not found", id)
		}
		r.log.Errorf("Failed to get order by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not retrieve order: %w", err)
	}

	items, err := r.getOrderItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *sqliteOrderRepository) getOrderItems(orderID string) ([]domain.OrderItem, error) {
	itemsQuery := `
        SELECT product_id, product_name, quantity, unit_price, total_price
        FROM order_items
        WHERE order_id = ?`
	rows, err := r.db.Query(itemsQuery, orderID)
	if err != nil {
		r.log.Errorf("Failed to query order items for order ID %s: %v", orderID, err)
		return nil, fmt.Errorf("could not retrieve order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			r.log.Errorf("Failed to scan order item row for order ID %s: %v", orderID, err)
			return nil, fmt.Errorf("error scanning order item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during order items iteration for order ID %s: %v", orderID, err)
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

func (r *sqliteOrderRepository) ListOrders(limit, offset int) ([]domain.Order, error) {
	limit, offset = clampPage(limit, offset)

	ordersQuery := `
        SELECT order_id, customer_name, payment_method, order_status, total_amount, order_date, order_time
        FROM orders
        ORDER BY order_date DESC, order_time DESC
        LIMIT ? OFFSET ?`
	rows, err := r.db.Query(ordersQuery, limit, offset)
	if err != nil {
		r.log.Errorf("Failed to list orders: %v", err)
		return nil, fmt.Errorf("could not retrieve orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.OrderID,
			&order.CustomerName,
			&order.PaymentMethod,
			&order.Status,
			&order.TotalAmount,
			&order.OrderDate,
			&order.OrderTime,
		); err != nil {
			r.log.Errorf("Failed to scan order row: %v", err)
			return nil, fmt.Errorf("error scanning order data: %w", err)
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during orders iteration: %v", err)
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for i := range orders {
		items, err := r.getOrderItems(orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// OrderIDExists is the collision probe used during order id generation.
func (r *sqliteOrderRepository) OrderIDExists(id string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM orders WHERE order_id = ?`, id).Scan(&count)
	if err != nil {
		r.log.Errorf("Error checking order ID existence for %s: %v", id, err)
		return false, fmt.Errorf("could not check order id: %w", err)
	}
	return count > 0, nil
}
