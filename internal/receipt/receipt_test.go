package receipt

import (
	"testing"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPDF(t *testing.T) {
	gen := NewGenerator("Health Point Pharmacy", "123 Main St")

	order := &domain.Order{
		OrderID:       "ORD-567",
		CustomerName:  "Juan Dela Cruz",
		PaymentMethod: "Cash",
		Status:        domain.StatusCompleted,
		TotalAmount:   48.00,
		OrderDate:     "2026-08-30",
		OrderTime:     "14:05:09",
		Items: []domain.OrderItem{
			{ProductID: 101, ProductName: "Amoxicillin 500mg", Quantity: 3, UnitPrice: 12.50, TotalPrice: 37.50},
			{ProductID: 202, ProductName: "Cetirizine 10mg", Quantity: 1, UnitPrice: 10.50, TotalPrice: 10.50},
		},
	}

	pdfBytes, err := gen.Render(order)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderNilOrder(t *testing.T) {
	gen := NewGenerator("", "")

	_, err := gen.Render(nil)
	require.Error(t, err)
}
