package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-console/internal/model"
	"github.com/nurpe/contract-console/internal/repository"
)

type PointService struct {
	points    *repository.PointRepository
	contracts *repository.ContractRepository
}

// PointInput carries the editable point fields. Label and value may be
// empty; the console does not validate them before save.
type PointInput struct {
	ContractID uuid.UUID
	Point      string
	Value      string
}

func NewPointService(points *repository.PointRepository, contracts *repository.ContractRepository) *PointService {
	return &PointService{points: points, contracts: contracts}
}

func (s *PointService) ListForContract(ctx context.Context, contractID uuid.UUID) ([]model.Point, error) {
	if _, err := s.contracts.Get(ctx, contractID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.points.ListByContract(ctx, contractID)
}

func (s *PointService) Create(ctx context.Context, input PointInput) (*model.Point, error) {
	if input.ContractID == uuid.Nil {
		return nil, fmt.Errorf("%w: contract_id is required", ErrInvalidInput)
	}
	if _, err := s.contracts.Get(ctx, input.ContractID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: contract does not exist", ErrNotFound)
		}
		return nil, err
	}
	return s.points.Create(ctx, model.Point{
		ContractID: input.ContractID,
		Point:      input.Point,
		Value:      input.Value,
	})
}

func (s *PointService) Update(ctx context.Context, id uuid.UUID, input PointInput) (*model.Point, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: point id is required", ErrInvalidInput)
	}
	existing, err := s.points.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	existing.Point = input.Point
	existing.Value = input.Value
	if err := s.points.Update(ctx, *existing); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *PointService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.points.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}
