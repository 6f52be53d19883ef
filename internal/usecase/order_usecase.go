package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/idgen"
	"github.com/sirupsen/logrus"
)

// orderCategory is the pseudo-category whose code prefixes order ids.
const orderCategory = "Order"

// CartLine is one entry of the checkout cart as submitted by the client.
type CartLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type OrderUseCase interface {
	Checkout(customerName, paymentMethod string, lines []CartLine) (*domain.Order, error)
	GetOrderByID(id string) (*domain.Order, error)
	ListOrders(limit, offset int) ([]domain.Order, error)
}

type orderUseCase struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	gen         *idgen.Generator
	now         func() time.Time
	log         *logrus.Logger
}

func NewOrderUseCase(orderRepo domain.OrderRepository, productRepo domain.ProductRepository, gen *idgen.Generator, now func() time.Time, logger *logrus.Logger) OrderUseCase {
	if now == nil {
		now = time.Now
	}
	return &orderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		gen:         gen,
		now:         now,
		log:         logger,
	}
}

// Checkout validates the cart, mints an order id and hands the order to
// the repository for atomic persistence. Stock is checked here against the
// current product rows; two concurrent checkouts can both pass this check
// and overdraw stock, which matches the behavior of the desktop app this
// service replaces.
func (uc *orderUseCase) Checkout(customerName, paymentMethod string, lines []CartLine) (*domain.Order, error) {
	if customerName == "" {
		return nil, errors.New("customer name cannot be empty")
	}
	if paymentMethod == "" {
		return nil, errors.New("payment method cannot be empty")
	}
	if len(lines) == 0 {
		return nil, errors.New("order must contain at least one item")
	}

	requested := make(map[int]int)
	items := make([]domain.OrderItem, 0, len(lines))
	var total float64

	for i, line := range lines {
		if line.ProductID <= 0 {
			return nil, fmt.Errorf("item %d: invalid product ID", i)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("item %d (product %d): quantity must be positive", i, line.ProductID)
		}

		product, err := uc.productRepo.GetProductByID(line.ProductID)
		if err != nil {
			uc.log.Warnf("Use Case: Inventory check failed for Product ID %d: %v", line.ProductID, err)
			return nil, fmt.Errorf("inventory check failed for product %d: %w", line.ProductID, err)
		}

		requested[line.ProductID] += line.Quantity
		if product.Stock < requested[line.ProductID] {
			uc.log.Warnf("Use Case: Insufficient stock for Product ID %d (Requested total: %d, Available: %d)", line.ProductID, requested[line.ProductID], product.Stock)
			return nil, fmt.Errorf("insufficient stock for product %d (requested total: %d, available: %d)", line.ProductID, requested[line.ProductID], product.Stock)
		}

		lineTotal := float64(line.Quantity) * product.Price
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  lineTotal,
		})
		total += lineTotal
	}

	orderID, err := uc.gen.Unique(orderCategory, uc.orderRepo.OrderIDExists)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to generate order id: %v", err)
		return nil, fmt.Errorf("could not generate order id: %w", err)
	}

	now := uc.now()
	order := &domain.Order{
		OrderID:       orderID,
		CustomerName:  customerName,
		PaymentMethod: paymentMethod,
		Status:        domain.StatusCompleted,
		TotalAmount:   total,
		OrderDate:     now.Format("2006-01-02"),
		OrderTime:     now.Format("15:04:05"),
		Items:         items,
	}

	uc.log.Infof("Use Case: Placing order %s for customer '%s' (%d items, total %.2f)", orderID, customerName, len(items), total)
	placed, err := uc.orderRepo.PlaceOrder(order)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to place order %s: %v", orderID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Order %s placed successfully", placed.OrderID)
	return placed, nil
}

func (uc *orderUseCase) GetOrderByID(id string) (*domain.Order, error) {
	if id == "" {
		return nil, errors.New("invalid order ID")
	}
	order, err := uc.orderRepo.GetOrderByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get order ID %s: %v", id, err)
		return nil, err
	}
	return order, nil
}

func (uc *orderUseCase) ListOrders(limit, offset int) ([]domain.Order, error) {
	orders, err := uc.orderRepo.ListOrders(limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list orders: %v", err)
		return nil, fmt.Errorf("could not retrieve orders: %w", err)
	}
	return orders, nil
}
