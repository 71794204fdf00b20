package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkzaman/customer-backend-go/models"
	"github.com/mkzaman/customer-backend-go/repository"
)

// CustomerStore is the port the handlers drive. The mongo-backed
// repository.CustomerRepository satisfies it in production.
type CustomerStore interface {
	Load(ctx context.Context, id string) (*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) (*models.Customer, error)
}

var _ CustomerStore = (*repository.CustomerRepository)(nil)

// storeError maps store failures onto the HTTP error contract.
func storeError(c echo.Context, err error) error {
	var verr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":    "Invalid Customer",
			"errorKey": "invalidcustomer",
		})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{
			"error":    "Customer was modified concurrently, reload and retry",
			"errorKey": "conflict",
		})
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":      "Validation failed",
			"violations": verr.Violations,
		})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to access customer store"})
}
