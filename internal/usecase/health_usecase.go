package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
)

type healthUsecase struct{}

func NewHealthUsecase() domain.HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:  "OK",
		Message: "Server is running",
	}
}
