package domain

import "context"

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Server is running"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
