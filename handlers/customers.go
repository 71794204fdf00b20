package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkzaman/customer-backend-go/models"
	"github.com/mkzaman/customer-backend-go/repository"
)

// CustomerHandler manages the customer documents themselves. Orders are not
// touched here beyond being carried along on whole-document saves.
type CustomerHandler struct {
	store CustomerStore
}

func NewCustomerHandler(store CustomerStore) *CustomerHandler {
	return &CustomerHandler{store: store}
}

// CreateCustomer inserts a new customer document. The store assigns id,
// createdAt and version 0; anything the caller put in those fields is ignored.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&customer); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":      "Invalid Customer",
			"violations": models.Violations(err),
		})
	}

	customer.ID = ""
	customer.Version = 0
	if customer.Orders == nil {
		customer.Orders = []models.Order{}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	saved, err := h.store.Save(ctx, &customer)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, saved)
}

// GetCustomer fetches the full aggregate by id.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, ok := requireCustomerID(c)
	if !ok {
		return noCustomerID(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	customer, err := h.store.Load(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Customer not found"})
		}
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// UpdateCustomer replaces the customer's own fields while keeping the stored
// order set. The version in the body is the caller's optimistic view; a stale
// one is answered with 409.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	customerID, ok := requireCustomerID(c)
	if !ok {
		return noCustomerID(c)
	}

	var payload models.Customer
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":      "Invalid Customer",
			"violations": models.Violations(err),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	customer, err := h.store.Load(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Customer not found"})
		}
		return storeError(c, err)
	}

	customer.FirstName = payload.FirstName
	customer.MiddleName = payload.MiddleName
	customer.LastName = payload.LastName
	customer.PaymentDetails = payload.PaymentDetails
	customer.BillingAddress = payload.BillingAddress
	customer.Version = payload.Version

	saved, err := h.store.Save(ctx, customer)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}
