package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkzaman/customer-backend-go/models"
)

// GetHealth reports service liveness.
func GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Health{Status: models.HealthStatusUp})
}
