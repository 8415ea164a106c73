package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps catalog products in a slice.
type ProductRepositoryStub struct {
	CreateFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn func(context.Context, *model.Product) error
	GetFn    func(context.Context, int64) (*model.Product, error)
	ListFn   func(context.Context) ([]model.Product, error)

	Products []model.Product
	Next     int64
}

// Create appends the product with a generated identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *product
	stored.ID = s.Next
	s.Next++
	s.Products = append(s.Products, stored)
	return &stored, nil
}

// Update replaces a stored product by identifier.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	for i, p := range s.Products {
		if p.ID == product.ID {
			s.Products[i] = *product
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// GetByID returns the stored product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive returns active products.
func (s *ProductRepositoryStub) ListActive(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	var active []model.Product
	for _, p := range s.Products {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

// CartRepositoryStub keeps cart lines per user.
type CartRepositoryStub struct {
	AddFn    func(context.Context, int64, int64, int) error
	ListFn   func(context.Context, int64) ([]model.CartLine, error)
	RemoveFn func(context.Context, int64, int64) error
	ClearFn  func(context.Context, int64) error

	Lines      map[int64][]model.CartLine
	ClearCalls []int64
}

// NewCartRepositoryStub constructs stub with initialized map.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Lines: make(map[int64][]model.CartLine)}
}

// Add records a cart line for the user.
func (s *CartRepositoryStub) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	if s.Lines == nil {
		s.Lines = make(map[int64][]model.CartLine)
	}
	for i, line := range s.Lines[userID] {
		if line.Product.ID == productID {
			s.Lines[userID][i].Quantity += quantity
			return nil
		}
	}
	s.Lines[userID] = append(s.Lines[userID], model.CartLine{
		Product:  model.Product{ID: productID},
		Quantity: quantity,
		AddedAt:  time.Now(),
	})
	return nil
}

// ListByUser returns the user's cart lines.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.Lines[userID], nil
}

// Remove drops one product row.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	lines := s.Lines[userID]
	for i, line := range lines {
		if line.Product.ID == productID {
			s.Lines[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Clear drops all rows for the user and records the call.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	s.ClearCalls = append(s.ClearCalls, userID)
	delete(s.Lines, userID)
	return nil
}

// OrderRepositoryStub records created orders and serves configured lists.
type OrderRepositoryStub struct {
	CreateFn     func(context.Context, *model.Order) (*model.Order, error)
	ListByUserFn func(context.Context, int64) ([]model.Order, error)
	ListFn       func(context.Context, int) ([]model.Order, error)

	mu      sync.Mutex
	Created []model.Order
	Orders  []model.Order
	Next    int64
}

// Lock exposes internal mutex for external synchronization.
func (s *OrderRepositoryStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *OrderRepositoryStub) Unlock() { s.mu.Unlock() }

// Create stores the order and assigns identifier and timestamp.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *order
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Created = append(s.Created, stored)
	return &stored, nil
}

// CreatedCount returns the number of stored orders.
func (s *OrderRepositoryStub) CreatedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Created)
}

// ListByUser returns configured orders.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// List returns configured orders for admin views.
func (s *OrderRepositoryStub) List(ctx context.Context, limit int) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit)
	}
	return s.Orders, nil
}

// SettingsRepositoryStub serves a single payment settings record.
type SettingsRepositoryStub struct {
	GetFn    func(context.Context) (*model.PaymentSettings, error)
	UpdateFn func(context.Context, *model.PaymentSettings) error

	Settings *model.PaymentSettings
}

// Get returns stored settings or an empty record.
func (s *SettingsRepositoryStub) Get(ctx context.Context) (*model.PaymentSettings, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx)
	}
	if s.Settings == nil {
		return &model.PaymentSettings{}, nil
	}
	return s.Settings, nil
}

// Update replaces stored settings.
func (s *SettingsRepositoryStub) Update(ctx context.Context, settings *model.PaymentSettings) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, settings)
	}
	s.Settings = settings
	return nil
}
