package usecase

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/idgen"
	"github.com/sirupsen/logrus"
)

// testClock pins checkout time to 2026-08-30 14:05:09.567, so generated
// id suffixes are 567 and date/time fields are stable.
var testClock = func() time.Time {
	return time.Date(2026, 8, 30, 14, 5, 9, 567_000_000, time.UTC)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testGenerator() *idgen.Generator {
	return idgen.NewGenerator(idgen.DefaultCodeTable(), idgen.Options{
		Now:   testClock,
		Sleep: func(time.Duration) {},
	})
}

type fakeProductRepo struct {
	products  map[int]*domain.Product
	created   []*domain.Product
	createErr error
	getErr    error
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[int]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.products[product.ID] = product
	r.created = append(r.created, product)
	return product, nil
}

func (r *fakeProductRepo) GetProductByID(id int) (*domain.Product, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d not found", id)
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) UpdateProduct(id int, updates map[string]interface{}) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d not found for update", id)
	}
	if name, ok := updates["name"].(string); ok {
		product.Name = name
	}
	if stock, ok := updates["stock"].(int); ok {
		product.Stock = stock
	}
	if status, ok := updates["status"].(string); ok {
		product.Status = status
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) DeleteProduct(id int) error {
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with id %d not found for deletion", id)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ListProducts(limit, offset int) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) SearchProducts(query string, limit, offset int) ([]domain.Product, error) {
	return r.ListProducts(limit, offset)
}

func (r *fakeProductRepo) ProductIDExists(id int) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

type fakeOrderRepo struct {
	placed    []*domain.Order
	taken     map[string]bool
	placeErr  error
	existsErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{taken: make(map[string]bool)}
}

func (r *fakeOrderRepo) PlaceOrder(order *domain.Order) (*domain.Order, error) {
	if r.placeErr != nil {
		return nil, r.placeErr
	}
	r.placed = append(r.placed, order)
	r.taken[order.OrderID] = true
	return order, nil
}

func (r *fakeOrderRepo) GetOrderByID(id string) (*domain.Order, error) {
	for _, order := range r.placed {
		if order.OrderID == id {
			return order, nil
		}
	}
	return nil, fmt.Errorf("order with id %s not found", id)
}

func (r *fakeOrderRepo) ListOrders(limit, offset int) ([]domain.Order, error) {
	out := []domain.Order{}
	for _, order := range r.placed {
		out = append(out, *order)
	}
	return out, nil
}

func (r *fakeOrderRepo) OrderIDExists(id string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return r.taken[id], nil
}

type fakeUserRepo struct {
	users     map[string]*domain.User
	nextID    int
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.users[user.Username]; ok {
		return nil, fmt.Errorf("user with username '%s' already exists", user.Username)
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = user
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, errors.New("user '" + username + "' not found")
	}
	return user, nil
}
