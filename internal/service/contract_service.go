package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-console/internal/model"
	"github.com/nurpe/contract-console/internal/repository"
)

type ContractService struct {
	contracts *repository.ContractRepository
	points    *repository.PointRepository
}

type ContractInput struct {
	ContractName string
	StartDate    string
	EndDate      string
}

func NewContractService(contracts *repository.ContractRepository, points *repository.PointRepository) *ContractService {
	return &ContractService{contracts: contracts, points: points}
}

func (s *ContractService) List(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.List(ctx)
}

// ListSummaries decorates every contract with the count and summed value of
// its points. Totals use the same lenient value parsing as the invoice view.
func (s *ContractService) ListSummaries(ctx context.Context) ([]model.ContractSummary, error) {
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	points, err := s.points.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(contracts))
	values := make(map[uuid.UUID]float64, len(contracts))
	for _, point := range points {
		counts[point.ContractID]++
		values[point.ContractID] += model.ParseValue(point.Value)
	}

	summaries := make([]model.ContractSummary, 0, len(contracts))
	for _, contract := range contracts {
		summaries = append(summaries, model.ContractSummary{
			ID:           contract.ID,
			ContractName: contract.ContractName,
			StartDate:    contract.StartDate,
			EndDate:      contract.EndDate,
			TotalPoints:  counts[contract.ID],
			TotalValue:   values[contract.ID],
		})
	}
	return summaries, nil
}

func (s *ContractService) Create(ctx context.Context, input ContractInput) (*model.Contract, error) {
	if err := validateContractInput(input); err != nil {
		return nil, err
	}
	created, err := s.contracts.Create(ctx, model.Contract{
		ContractName: strings.TrimSpace(input.ContractName),
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ContractService) Update(ctx context.Context, id uuid.UUID, input ContractInput) (*model.Contract, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: contract id is required", ErrInvalidInput)
	}
	if err := validateContractInput(input); err != nil {
		return nil, err
	}
	contract := model.Contract{
		ID:           id,
		ContractName: strings.TrimSpace(input.ContractName),
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := s.contracts.Update(ctx, contract); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.contracts.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateContractInput(input ContractInput) error {
	if strings.TrimSpace(input.ContractName) == "" {
		return fmt.Errorf("%w: contract_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.StartDate) == "" {
		return fmt.Errorf("%w: start_date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.EndDate) == "" {
		return fmt.Errorf("%w: end_date is required", ErrInvalidInput)
	}

	start, startOK := model.ParseDate(input.StartDate)
	end, endOK := model.ParseDate(input.EndDate)
	if startOK && endOK && end.Before(start) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidInput)
	}
	return nil
}
