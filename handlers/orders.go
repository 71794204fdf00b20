package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkzaman/customer-backend-go/models"
)

// OrderHandler exposes order lifecycle operations on the customer aggregate.
// Orders have no storage path of their own: every mutation is one load of the
// full customer document, an in-memory change to the embedded order set, and
// one whole-document save. Two concurrent mutations of the same customer can
// both load the same version; the store's version check then fails the second
// save with a conflict, and retrying is the caller's call.
type OrderHandler struct {
	store CustomerStore
}

func NewOrderHandler(store CustomerStore) *OrderHandler {
	return &OrderHandler{store: store}
}

// requireCustomerID rejects a blank customerId path parameter before any
// store access.
func requireCustomerID(c echo.Context) (string, bool) {
	customerID := c.Param("customerId")
	if strings.TrimSpace(customerID) == "" {
		return "", false
	}
	return customerID, true
}

func noCustomerID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error":    "No Customer",
		"errorKey": "noid",
	})
}

// bindOrder decodes and validates the request body. On failure it writes the
// 400 response itself and reports false.
func (h *OrderHandler) bindOrder(c echo.Context, customerID string) (models.Order, bool) {
	var order models.Order
	if err := c.Bind(&order); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
		return order, false
	}
	order.CustomerID = customerID
	order.ApplyDefaults()
	if err := c.Validate(&order); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":      "Invalid Order",
			"violations": models.Violations(err),
		})
		return order, false
	}
	return order, true
}

// CreateOrder adds an order to the customer's embedded set. An order whose id
// is already present leaves the set as it was.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	customerID, ok := requireCustomerID(c)
	if !ok {
		return noCustomerID(c)
	}

	order, ok := h.bindOrder(c, customerID)
	if !ok {
		return nil
	}
	log.Printf("Creating order %s for customer %s", order.ID, customerID)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	customer, err := h.store.Load(ctx, customerID)
	if err != nil {
		return storeError(c, err)
	}

	customer.AddOrder(order)
	if _, err := h.store.Save(ctx, customer); err != nil {
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// UpdateOrder replaces the set member whose id matches the submitted order;
// when no member matches, the order joins the set as a new entry.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	customerID, ok := requireCustomerID(c)
	if !ok {
		return noCustomerID(c)
	}

	order, ok := h.bindOrder(c, customerID)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	customer, err := h.store.Load(ctx, customerID)
	if err != nil {
		return storeError(c, err)
	}

	customer.PutOrder(order)
	if _, err := h.store.Save(ctx, customer); err != nil {
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// GetAllOrders returns the customer's full order set, unordered.
func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	customerID, ok := requireCustomerID(c)
	if !ok {
		return noCustomerID(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	customer, err := h.store.Load(ctx, customerID)
	if err != nil {
		return storeError(c, err)
	}

	orders := customer.Orders
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder returns the single order with the given id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	customerID, ok := requireCustomerID(c)
	if !ok {
		return noCustomerID(c)
	}
	orderID := c.Param("orderId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	customer, err := h.store.Load(ctx, customerID)
	if err != nil {
		return storeError(c, err)
	}

	order, found := customer.FindOrder(orderID)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}
	return c.JSON(http.StatusOK, order)
}

// DeleteOrder removes the order with the given id. Deleting an id that is not
// present still saves and answers 204.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	customerID, ok := requireCustomerID(c)
	if !ok {
		return noCustomerID(c)
	}
	orderID := c.Param("orderId")
	log.Printf("Deleting order %s for customer %s", orderID, customerID)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	customer, err := h.store.Load(ctx, customerID)
	if err != nil {
		return storeError(c, err)
	}

	customer.RemoveOrder(orderID)
	if _, err := h.store.Save(ctx, customer); err != nil {
		return storeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
