package domain

type OrderStatus string

const (
	StatusCompleted OrderStatus = "Completed"
	StatusRefunded  OrderStatus = "Refunded"
)

type Order struct {
	OrderID       string      `json:"order_id"`
	CustomerName  string      `json:"customer_name"`
	PaymentMethod string      `json:"payment_method"`
	Status        OrderStatus `json:"order_status"`
	TotalAmount   float64     `json:"total_amount"`
	OrderDate     string      `json:"order_date"`
	OrderTime     string      `json:"order_time"`
	Items         []OrderItem `json:"items"`
}

// OrderItem is one cart line, captured at checkout time. TotalPrice is
// Quantity * UnitPrice and is persisted alongside the inputs so receipts
// never recompute against a product whose price has since changed.
type OrderItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type OrderRepository interface {
	// PlaceOrder persists the order header, its items and the matching
	// stock decrements in a single transaction. On error nothing is
	// committed.
	PlaceOrder(order *Order) (*Order, error)
	GetOrderByID(id string) (*Order, error)
	ListOrders(limit, offset int) ([]Order, error)
	OrderIDExists(id string) (bool, error)
}
