// Package receipt renders a completed order into a printable PDF. It is a
// pure consumer of the order data: nothing here touches the store.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

type Generator struct {
	storeName string
	address   string
}

func NewGenerator(storeName, address string) *Generator {
	if storeName == "" {
		storeName = "Health Point Pharmacy"
	}
	return &Generator{
		storeName: storeName,
		address:   address,
	}
}

// Render produces the PDF bytes for one order and its line items.
func (g *Generator) Render(order *domain.Order) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("order cannot be nil")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", order.OrderID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, g.storeName, "", 1, "C", false, 0, "")
	if g.address != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, g.address, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Order ID: %s", order.OrderID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Customer: %s", order.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Date: %s  Time: %s", order.OrderDate, order.OrderTime), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Payment: %s", order.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(80, 6, item.ProductName, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", item.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", item.TotalPrice), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(135, 7, "Total Amount", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", order.TotalAmount), "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Thank you for your purchase. Get well soon!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not render receipt for order %s: %w", order.OrderID, err)
	}
	return buf.Bytes(), nil
}
