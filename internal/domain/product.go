package domain

// Product statuses as shown in the inventory screen.
const (
	ProductAvailable    = "Available"
	ProductOutOfStock   = "Out of Stock"
	ProductDiscontinued = "Discontinued"
	ProductLowStock     = "Low Stock"
)

type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Status    string  `json:"status"`
	ImagePath string  `json:"image_path"`
	DateAdded int64   `json:"date_added"`
}

func IsValidProductStatus(status string) bool {
	switch status {
	case ProductAvailable, ProductOutOfStock, ProductDiscontinued, ProductLowStock:
		return true
	default:
		return false
	}
}

type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id int) (*Product, error)
	UpdateProduct(id int, updates map[string]interface{}) (*Product, error)
	DeleteProduct(id int) error
	ListProducts(limit, offset int) ([]Product, error)
	SearchProducts(query string, limit, offset int) ([]Product, error)
	ProductIDExists(id int) (bool, error)
}
