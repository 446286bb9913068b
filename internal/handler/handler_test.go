package handler

import (
	"time"

	"go-dairy-books/internal/middleware"
	"go-dairy-books/internal/model"
	"go-dairy-books/internal/service"
	"go-dairy-books/internal/ws"
	"go-dairy-books/pkg/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mimic the store contract the handlers
// rely on: ids assigned on create, gorm.ErrRecordNotFound on a missing
// row, UpdatedAt refreshed on every save.

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return nil
}

func stamp(base *model.BaseModel, id uint) {
	now := time.Now()
	base.ID = id
	base.CreatedAt = now
	base.UpdatedAt = now
}

type fakeCustomerRepo struct {
	rows   map[uint]*model.Customer
	nextID uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{rows: make(map[uint]*model.Customer), nextID: 1}
}

func (f *fakeCustomerRepo) FindAll() ([]model.Customer, error) {
	out := []model.Customer{}
	for _, r := range f.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeCustomerRepo) FindByID(id uint) (*model.Customer, error) {
	if r, ok := f.rows[id]; ok {
		row := *r
		return &row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) Create(c *model.Customer) error {
	stamp(&c.BaseModel, f.nextID)
	f.nextID++
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Update(c *model.Customer) error {
	c.UpdatedAt = time.Now()
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(id uint) error {
	delete(f.rows, id)
	return nil
}

type fakeMilkRepo struct {
	rows   map[uint]*model.Milk
	nextID uint
}

func newFakeMilkRepo() *fakeMilkRepo {
	return &fakeMilkRepo{rows: make(map[uint]*model.Milk), nextID: 1}
}

func (f *fakeMilkRepo) FindAll() ([]model.Milk, error) {
	out := []model.Milk{}
	for _, r := range f.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeMilkRepo) FindByID(id uint) (*model.Milk, error) {
	if r, ok := f.rows[id]; ok {
		row := *r
		return &row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMilkRepo) Create(m *model.Milk) error {
	stamp(&m.BaseModel, f.nextID)
	f.nextID++
	f.rows[m.ID] = m
	return nil
}

func (f *fakeMilkRepo) Update(m *model.Milk) error {
	m.UpdatedAt = time.Now()
	f.rows[m.ID] = m
	return nil
}

func (f *fakeMilkRepo) Delete(id uint) error {
	delete(f.rows, id)
	return nil
}

type fakeSaleRepo struct {
	rows   map[uint]*model.Sale
	nextID uint
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{rows: make(map[uint]*model.Sale), nextID: 1}
}

func (f *fakeSaleRepo) FindAll() ([]model.Sale, error) {
	out := []model.Sale{}
	for _, r := range f.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeSaleRepo) FindByID(id uint) (*model.Sale, error) {
	if r, ok := f.rows[id]; ok {
		row := *r
		return &row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSaleRepo) Create(s *model.Sale) error {
	stamp(&s.BaseModel, f.nextID)
	f.nextID++
	f.rows[s.ID] = s
	return nil
}

func (f *fakeSaleRepo) Update(s *model.Sale) error {
	s.UpdatedAt = time.Now()
	f.rows[s.ID] = s
	return nil
}

func (f *fakeSaleRepo) Delete(id uint) error {
	delete(f.rows, id)
	return nil
}

type fakePurchaseRepo struct {
	rows   map[uint]*model.Purchase
	nextID uint
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{rows: make(map[uint]*model.Purchase), nextID: 1}
}

func (f *fakePurchaseRepo) FindAll() ([]model.Purchase, error) {
	out := []model.Purchase{}
	for _, r := range f.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakePurchaseRepo) FindByID(id uint) (*model.Purchase, error) {
	if r, ok := f.rows[id]; ok {
		row := *r
		return &row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePurchaseRepo) Create(p *model.Purchase) error {
	stamp(&p.BaseModel, f.nextID)
	f.nextID++
	f.rows[p.ID] = p
	return nil
}

func (f *fakePurchaseRepo) Update(p *model.Purchase) error {
	p.UpdatedAt = time.Now()
	f.rows[p.ID] = p
	return nil
}

func (f *fakePurchaseRepo) Delete(id uint) error {
	delete(f.rows, id)
	return nil
}

type fakeExpenseRepo struct {
	rows   map[uint]*model.Expense
	nextID uint
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{rows: make(map[uint]*model.Expense), nextID: 1}
}

func (f *fakeExpenseRepo) FindAll() ([]model.Expense, error) {
	out := []model.Expense{}
	for _, r := range f.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindByID(id uint) (*model.Expense, error) {
	if r, ok := f.rows[id]; ok {
		row := *r
		return &row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeExpenseRepo) Create(e *model.Expense) error {
	stamp(&e.BaseModel, f.nextID)
	f.nextID++
	f.rows[e.ID] = e
	return nil
}

func (f *fakeExpenseRepo) Update(e *model.Expense) error {
	e.UpdatedAt = time.Now()
	f.rows[e.ID] = e
	return nil
}

func (f *fakeExpenseRepo) Delete(id uint) error {
	delete(f.rows, id)
	return nil
}

// newTestApp wires a full Fiber app over in-memory fakes: public auth
// routes, RequireAuth-protected CRUD routes, a running hub.
func newTestApp() (*fiber.App, *token.Manager) {
	hub := ws.NewHub()
	go hub.Run()

	tokens := token.NewManager("test-secret", time.Hour)
	userRepo := newFakeUserRepo()

	authHandler := NewAuthHandler(service.NewAuthService(userRepo, tokens))
	customerHandler := NewCustomerHandler(newFakeCustomerRepo(), hub)
	milkHandler := NewMilkHandler(newFakeMilkRepo(), hub)
	saleHandler := NewSaleHandler(newFakeSaleRepo(), hub)
	purchaseHandler := NewPurchaseHandler(newFakePurchaseRepo(), hub)
	expenseHandler := NewExpenseHandler(newFakeExpenseRepo(), hub)

	app := fiber.New()
	api := app.Group("/api")

	api.Get("", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Dairy books backend connected"})
	})
	api.Post("/users", authHandler.Register)
	api.Post("/token", authHandler.Token)

	protected := api.Group("", middleware.RequireAuth(tokens, userRepo))
	protected.Get("/users/me", authHandler.Me)

	protected.Get("/customers", customerHandler.List)
	protected.Post("/customers", customerHandler.Create)
	protected.Get("/customers/:id", customerHandler.Get)
	protected.Put("/customers/:id", customerHandler.Update)
	protected.Delete("/customers/:id", customerHandler.Delete)

	protected.Get("/milks", milkHandler.List)
	protected.Post("/milks", milkHandler.Create)
	protected.Get("/milks/:id", milkHandler.Get)
	protected.Put("/milks/:id", milkHandler.Update)
	protected.Delete("/milks/:id", milkHandler.Delete)

	protected.Get("/sales", saleHandler.List)
	protected.Post("/sales", saleHandler.Create)
	protected.Get("/sales/:id", saleHandler.Get)
	protected.Put("/sales/:id", saleHandler.Update)
	protected.Delete("/sales/:id", saleHandler.Delete)

	protected.Get("/purchases", purchaseHandler.List)
	protected.Post("/purchases", purchaseHandler.Create)
	protected.Get("/purchases/:id", purchaseHandler.Get)
	protected.Put("/purchases/:id", purchaseHandler.Update)
	protected.Delete("/purchases/:id", purchaseHandler.Delete)

	protected.Get("/expenses", expenseHandler.List)
	protected.Post("/expenses", expenseHandler.Create)
	protected.Get("/expenses/:id", expenseHandler.Get)
	protected.Put("/expenses/:id", expenseHandler.Update)
	protected.Delete("/expenses/:id", expenseHandler.Delete)

	return app, tokens
}
