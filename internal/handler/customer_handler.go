package handler

import (
	"errors"
	"strconv"

	"go-dairy-books/internal/model"
	"go-dairy-books/internal/repository"
	"go-dairy-books/internal/ws"
	"go-dairy-books/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// parseID parses the :id route param into a primary key
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	return uint(id), err
}

// validationError formats the first failed field for the response
func validationError(errs []*validator.ErrorResponse) string {
	return "Validation failed: field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"
}

type CustomerHandler struct {
	repo repository.CustomerRepository
	hub  *ws.Hub
}

func NewCustomerHandler(repo repository.CustomerRepository, hub *ws.Hub) *CustomerHandler {
	return &CustomerHandler{repo: repo, hub: hub}
}

// List returns all customers in natural store order
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customers"})
	}
	return c.JSON(customers)
}

// Create persists a new customer
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(customer); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	customer.BaseModel = model.BaseModel{} // id and timestamps are store-assigned
	customer.Milks = nil                   // milk entries go through their own endpoint

	if err := h.repo.Create(&customer); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create customer"})
	}

	go h.hub.RecordChange("customer", "created", customer)
	return c.Status(201).JSON(customer)
}

// Get returns one customer by id
// GET /api/customers/:id
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	customer, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Customer does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customer"})
	}
	return c.JSON(customer)
}

// Update overwrites every field from the input and refreshes updated_at
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var input model.Customer
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	customer, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Customer does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customer"})
	}

	customer.Name = input.Name
	customer.Mobile = input.Mobile
	customer.Email = input.Email
	customer.PAN = input.PAN
	customer.Address = input.Address

	if err := h.repo.Update(customer); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update customer"})
	}

	go h.hub.RecordChange("customer", "updated", customer)
	return c.JSON(customer)
}

// Delete removes one customer; its milk entries stay untouched
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	customer, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Customer does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customer"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete customer"})
	}

	go h.hub.RecordChange("customer", "deleted", customer)
	return c.JSON(fiber.Map{"message": "Successfully deleted"})
}
