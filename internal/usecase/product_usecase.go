package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/idgen"
	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProductByID(id int) (*domain.Product, error)
	UpdateProduct(id int, updates map[string]interface{}) (*domain.Product, error)
	DeleteProduct(id int) error
	ListProducts(limit, offset int) ([]domain.Product, error)
	SearchProducts(query string, limit, offset int) ([]domain.Product, error)
	CategoryCodes() map[string]string
	AddCategoryCode(name, code string) error
}

type productUseCase struct {
	productRepo domain.ProductRepository
	gen         *idgen.Generator
	now         func() time.Time
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, gen *idgen.Generator, now func() time.Time, logger *logrus.Logger) ProductUseCase {
	if now == nil {
		now = time.Now
	}
	return &productUseCase{
		productRepo: repo,
		gen:         gen,
		now:         now,
		log:         logger,
	}
}

// CreateProduct validates the fields, mints a category-based product id
// (the numeric suffix of a generated "CODE-NNN" id, checked against the
// product table) and persists the row.
func (uc *productUseCase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		uc.log.Warn("Use Case: Attempted to create product with empty name")
		return nil, errors.New("product name cannot be empty")
	}
	if product.Category == "" {
		uc.log.Warnf("Use Case: Attempted to create product '%s' without category", product.Name)
		return nil, errors.New("product category cannot be empty")
	}
	if product.Price <= 0 {
		uc.log.Warnf("Use Case: Attempted to create product '%s' with invalid price: %f", product.Name, product.Price)
		return nil, errors.New("product price must be positive")
	}
	if product.Stock < 0 {
		uc.log.Warnf("Use Case: Attempted to create product '%s' with negative stock: %d", product.Name, product.Stock)
		return nil, errors.New("product stock cannot be negative")
	}
	if !domain.IsValidProductStatus(product.Status) {
		uc.log.Warnf("Use Case: Attempted to create product '%s' with invalid status: %s", product.Name, product.Status)
		return nil, fmt.Errorf("invalid product status: %s", product.Status)
	}

	id, err := uc.gen.Unique(product.Category, func(candidate string) (bool, error) {
		suffix, err := idgen.NumericSuffix(candidate)
		if err != nil {
			return false, err
		}
		// A zero suffix would mint product id 0, which every lookup
		// rejects as invalid. Report it taken so the generator retries,
		// keeping product ids in [1, 999] like the random fallback.
		if suffix == 0 {
			return true, nil
		}
		return uc.productRepo.ProductIDExists(suffix)
	})
	if err != nil {
		uc.log.Errorf("Use Case: Failed to generate product id for category '%s': %v", product.Category, err)
		return nil, fmt.Errorf("could not generate product id: %w", err)
	}
	suffix, err := idgen.NumericSuffix(id)
	if err != nil {
		return nil, fmt.Errorf("could not generate product id: %w", err)
	}
	product.ID = suffix
	product.DateAdded = uc.now().Unix()

	uc.log.Infof("Use Case: Attempting to create product '%s' with ID %d (display id %s)", product.Name, product.ID, id)
	createdProduct, err := uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	return createdProduct, nil
}

func (uc *productUseCase) GetProductByID(id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, errors.New("invalid product ID")
	}
	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) UpdateProduct(id int, updates map[string]interface{}) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid product ID: %d", id)
		return nil, errors.New("invalid product ID for update")
	}
	if len(updates) == 0 {
		return uc.productRepo.GetProductByID(id)
	}

	validUpdates := make(map[string]interface{})
	for key, value := range updates {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok || name == "" {
				return nil, errors.New("product name cannot be empty if provided for update")
			}
			validUpdates[key] = name
		case "category":
			category, ok := value.(string)
			if !ok || category == "" {
				return nil, errors.New("product category cannot be empty if provided for update")
			}
			validUpdates[key] = category
		case "price":
			price, ok := value.(float64)
			if !ok || price <= 0 {
				return nil, errors.New("product price must be positive if provided for update")
			}
			validUpdates[key] = price
		case "stock":
			stock, err := toInt(value)
			if err != nil || stock < 0 {
				return nil, errors.New("product stock cannot be negative if provided for update")
			}
			validUpdates[key] = stock
		case "status":
			status, ok := value.(string)
			if !ok || !domain.IsValidProductStatus(status) {
				return nil, fmt.Errorf("invalid product status: %v", value)
			}
			validUpdates[key] = status
		case "image_path":
			imagePath, ok := value.(string)
			if !ok {
				return nil, errors.New("invalid type for image_path")
			}
			validUpdates[key] = imagePath
		default:
			uc.log.Warnf("Use Case: Attempted to update unknown or unsupported field '%s' for product ID %d", key, id)
		}
	}

	if len(validUpdates) == 0 {
		return uc.productRepo.GetProductByID(id)
	}

	updatedProduct, err := uc.productRepo.UpdateProduct(id, validUpdates)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed partial update for product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", updatedProduct.ID)
	return updatedProduct, nil
}

func (uc *productUseCase) DeleteProduct(id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return errors.New("invalid product ID for delete")
	}
	if err := uc.productRepo.DeleteProduct(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}
	return nil
}

func (uc *productUseCase) ListProducts(limit, offset int) ([]domain.Product, error) {
	products, err := uc.productRepo.ListProducts(limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	return products, nil
}

func (uc *productUseCase) SearchProducts(query string, limit, offset int) ([]domain.Product, error) {
	if query == "" {
		return uc.ListProducts(limit, offset)
	}
	products, err := uc.productRepo.SearchProducts(query, limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search products for %q: %v", query, err)
		return nil, fmt.Errorf("could not search products: %w", err)
	}
	return products, nil
}

func (uc *productUseCase) CategoryCodes() map[string]string {
	return uc.gen.Table().All()
}

func (uc *productUseCase) AddCategoryCode(name, code string) error {
	if err := uc.gen.Table().Add(name, code); err != nil {
		uc.log.Warnf("Use Case: Rejected category code mapping %q -> %q: %v", name, code, err)
		return err
	}
	uc.log.Infof("Use Case: Registered category code mapping %q -> %q", name, code)
	return nil
}

func toInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, errors.New("value is not a whole number")
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", value)
	}
}
