package models

type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "UP"
	HealthStatusDown HealthStatus = "DOWN"
)

type Health struct {
	Status HealthStatus `json:"status"`
}
