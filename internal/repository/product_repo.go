package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type sqliteProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewSQLiteProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &sqliteProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *sqliteProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO meds_product (product_id, name, category, price, stock, status, image_path, date_added)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.Stock,
		product.Status,
		nullableString(product.ImagePath),
		product.DateAdded,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			r.log.Warnf("Attempted to create product with duplicate ID: %d", product.ID)
			return nil, fmt.Errorf("product with id %d already exists", product.ID)
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *sqliteProductRepository) GetProductByID(id int) (*domain.Product, error) {
	query := `
        SELECT product_id, name, category, price, stock, status, image_path, date_added
        FROM meds_product
        WHERE product_id = ?`

	product := &domain.Product{}
	var imagePath sql.NullString

	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Stock,
		&product.Status,
		&imagePath,
		&product.DateAdded,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d not found", id)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	product.ImagePath = imagePath.String

	return product, nil
}

func (r *sqliteProductRepository) UpdateProduct(id int, updates map[string]interface{}) (*domain.Product, error) {
	if len(updates) == 0 {
		return r.GetProductByID(id)
	}

	setClauses := []string{}
	args := []interface{}{}

	for key, value := range updates {
		switch key {
		case "name", "category", "price", "stock", "status", "image_path":
			setClauses = append(setClauses, fmt.Sprintf("%s = ?", key))
			args = append(args, value)
		default:
			r.log.Warnf("Repository: Skipping unknown field '%s' provided for product update ID %d", key, id)
		}
	}

	if len(setClauses) == 0 {
		return r.GetProductByID(id)
	}

	query := "UPDATE meds_product SET " + strings.Join(setClauses, ", ") + " WHERE product_id = ?"
	args = append(args, id)

	r.log.Debugf("Repository: Executing partial update query for ID %d: %s", id, query)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		r.log.Errorf("Repository: Failed to execute partial update for product ID %d: %v", id, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after update for ID %d: %v", id, err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Product with ID %d not found for update (0 rows affected)", id)
		return nil, fmt.Errorf("product with id %d not found for update", id)
	}

	return r.GetProductByID(id)
}

func (r *sqliteProductRepository) DeleteProduct(id int) error {
	result, err := r.db.Exec(`DELETE FROM meds_product WHERE product_id = ?`, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return fmt.Errorf("product with id %d not found for deletion", id)
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *sqliteProductRepository) ListProducts(limit, offset int) ([]domain.Product, error) {
	limit, offset = clampPage(limit, offset)

	query := `
        SELECT product_id, name, category, price, stock, status, image_path, date_added
        FROM meds_product
        ORDER BY date_added DESC, product_id DESC
        LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		r.log.Errorf("Failed to list products with limit %d, offset %d: %v", limit, offset, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	return r.scanProducts(rows)
}

func (r *sqliteProductRepository) SearchProducts(query string, limit, offset int) ([]domain.Product, error) {
	limit, offset = clampPage(limit, offset)
	pattern := "%" + query + "%"

	sqlQuery := `
        SELECT product_id, name, category, price, stock, status, image_path, date_added
        FROM meds_product
        WHERE name LIKE ? OR category LIKE ?
        ORDER BY date_added DESC, product_id DESC
        LIMIT ? OFFSET ?`
	rows, err := r.db.Query(sqlQuery, pattern, pattern, limit, offset)
	if err != nil {
		r.log.Errorf("Failed to search products for %q: %v", query, err)
		return nil, fmt.Errorf("could not search products: %w", err)
	}
	defer rows.Close()

	return r.scanProducts(rows)
}

// ProductIDExists is the collision probe used during id generation.
func (r *sqliteProductRepository) ProductIDExists(id int) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM meds_product WHERE product_id = ?`, id).Scan(&count)
	if err != nil {
		r.log.Errorf("Error checking product ID existence for %d: %v", id, err)
		return false, fmt.Errorf("could not check product id: %w", err)
	}
	return count > 0, nil
}

func (r *sqliteProductRepository) scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		var imagePath sql.NullString
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.Stock,
			&product.Status,
			&imagePath,
			&product.DateAdded,
		); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		product.ImagePath = imagePath.String
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
