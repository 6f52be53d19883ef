package usecase

import (
	"errors"
	"testing"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amoxicillin(stock int) *domain.Product {
	return &domain.Product{ID: 101, Name: "Amoxicillin 500mg", Category: "Antibiotic", Price: 12.50, Stock: stock, Status: domain.ProductAvailable}
}

func cetirizine(stock int) *domain.Product {
	return &domain.Product{ID: 202, Name: "Cetirizine 10mg", Category: "Allergy", Price: 8.00, Stock: stock, Status: domain.ProductAvailable}
}

func TestCheckoutPlacesOrder(t *testing.T) {
	productRepo := newFakeProductRepo(amoxicillin(40), cetirizine(25))
	orderRepo := newFakeOrderRepo()
	uc := NewOrderUseCase(orderRepo, productRepo, testGenerator(), testClock, testLogger())

	order, err := uc.Checkout("Juan Dela Cruz", "Cash", []CartLine{
		{ProductID: 101, Quantity: 3},
		{ProductID: 202, Quantity: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-567", order.OrderID)
	assert.Equal(t, "Juan Dela Cruz", order.CustomerName)
	assert.Equal(t, "Cash", order.PaymentMethod)
	assert.Equal(t, domain.StatusCompleted, order.Status)
	assert.Equal(t, "2026-08-30", order.OrderDate)
	assert.Equal(t, "14:05:09", order.OrderTime)
	assert.InDelta(t, 3*12.50+2*8.00, order.TotalAmount, 0.001)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Amoxicillin 500mg", order.Items[0].ProductName)
	assert.InDelta(t, 12.50, order.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 37.50, order.Items[0].TotalPrice, 0.001)
	assert.Equal(t, 2, order.Items[1].Quantity)

	require.Len(t, orderRepo.placed, 1)
}

func TestCheckoutValidation(t *testing.T) {
	productRepo := newFakeProductRepo(amoxicillin(40))
	uc := NewOrderUseCase(newFakeOrderRepo(), productRepo, testGenerator(), testClock, testLogger())

	tests := []struct {
		name          string
		customerName  string
		paymentMethod string
		lines         []CartLine
		wantErr       string
	}{
		{"empty customer", "", "Cash", []CartLine{{101, 1}}, "customer name cannot be empty"},
		{"empty payment", "Juan", "", []CartLine{{101, 1}}, "payment method cannot be empty"},
		{"empty cart", "Juan", "Cash", nil, "at least one item"},
		{"bad product id", "Juan", "Cash", []CartLine{{0, 1}}, "invalid product ID"},
		{"bad quantity", "Juan", "Cash", []CartLine{{101, 0}}, "quantity must be positive"},
		{"unknown product", "Juan", "Cash", []CartLine{{999, 1}}, "inventory check failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Checkout(tt.customerName, tt.paymentMethod, tt.lines)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckoutInsufficientStock(t *testing.T) {
	productRepo := newFakeProductRepo(amoxicillin(2))
	uc := NewOrderUseCase(newFakeOrderRepo(), productRepo, testGenerator(), testClock, testLogger())

	_, err := uc.Checkout("Juan", "Cash", []CartLine{{ProductID: 101, Quantity: 3}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestCheckoutDuplicateLinesCountAgainstStockTogether(t *testing.T) {
	productRepo := newFakeProductRepo(amoxicillin(5))
	uc := NewOrderUseCase(newFakeOrderRepo(), productRepo, testGenerator(), testClock, testLogger())

	// Each line fits on its own but the combined quantity does not.
	_, err := uc.Checkout("Juan", "Cash", []CartLine{
		{ProductID: 101, Quantity: 3},
		{ProductID: 101, Quantity: 3},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestCheckoutRepositoryFailureSurfaces(t *testing.T) {
	productRepo := newFakeProductRepo(amoxicillin(40))
	orderRepo := newFakeOrderRepo()
	orderRepo.placeErr = errors.New("database is locked")
	uc := NewOrderUseCase(orderRepo, productRepo, testGenerator(), testClock, testLogger())

	_, err := uc.Checkout("Juan", "Cash", []CartLine{{ProductID: 101, Quantity: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestCheckoutIDProbeFailureSurfaces(t *testing.T) {
	productRepo := newFakeProductRepo(amoxicillin(40))
	orderRepo := newFakeOrderRepo()
	orderRepo.existsErr = errors.New("database is locked")
	uc := NewOrderUseCase(orderRepo, productRepo, testGenerator(), testClock, testLogger())

	_, err := uc.Checkout("Juan", "Cash", []CartLine{{ProductID: 101, Quantity: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not generate order id")
	assert.Empty(t, orderRepo.placed)
}

func TestGetOrderByIDValidation(t *testing.T) {
	uc := NewOrderUseCase(newFakeOrderRepo(), newFakeProductRepo(), testGenerator(), testClock, testLogger())

	_, err := uc.GetOrderByID("")
	require.Error(t, err)
}
