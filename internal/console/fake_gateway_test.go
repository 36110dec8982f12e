package console

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nurpe/contract-console/internal/gateway"
	"github.com/nurpe/contract-console/internal/model"
)

var errFakeGateway = errors.New("gateway down")

// fakeGateway is an in-memory Gateway with per-operation failure switches
// and call counters, enough to observe exactly which network calls the
// console issues.
type fakeGateway struct {
	contracts []model.Contract
	points    []model.Point

	calls map[string]int

	failLogin          bool
	failListContracts  bool
	failListSummaries  bool
	failCreateContract bool
	failUpdateContract bool
	failDeleteContract bool
	failListPoints     bool
	failCreatePoint    bool
	failUpdatePoint    bool
	failDeletePoint    bool

	// listPointsHook runs after the snapshot is taken but before the
	// response is returned, standing in for work that happens while a
	// fetch is in flight.
	listPointsHook func(contractID uuid.UUID)
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{calls: map[string]int{}}
}

func (f *fakeGateway) seedContract(name, start, end string) model.Contract {
	contract := model.Contract{ID: uuid.New(), ContractName: name, StartDate: start, EndDate: end}
	f.contracts = append(f.contracts, contract)
	return contract
}

func (f *fakeGateway) seedPoint(contractID uuid.UUID, label, value string) model.Point {
	point := model.Point{ID: uuid.New(), ContractID: contractID, Point: label, Value: value}
	f.points = append(f.points, point)
	return point
}

func (f *fakeGateway) Login(ctx context.Context, id, password string) error {
	f.calls["Login"]++
	if f.failLogin {
		return errFakeGateway
	}
	return nil
}

func (f *fakeGateway) ListContracts(ctx context.Context) ([]model.Contract, error) {
	f.calls["ListContracts"]++
	if f.failListContracts {
		return nil, errFakeGateway
	}
	out := make([]model.Contract, len(f.contracts))
	copy(out, f.contracts)
	return out, nil
}

func (f *fakeGateway) ListContractSummaries(ctx context.Context) ([]model.ContractSummary, error) {
	f.calls["ListContractSummaries"]++
	if f.failListSummaries {
		return nil, errFakeGateway
	}
	summaries := make([]model.ContractSummary, 0, len(f.contracts))
	for _, contract := range f.contracts {
		summary := model.ContractSummary{
			ID:           contract.ID,
			ContractName: contract.ContractName,
			StartDate:    contract.StartDate,
			EndDate:      contract.EndDate,
		}
		for _, point := range f.points {
			if point.ContractID == contract.ID {
				summary.TotalPoints++
				summary.TotalValue += model.ParseValue(point.Value)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (f *fakeGateway) CreateContract(ctx context.Context, input gateway.ContractInput) (*model.Contract, error) {
	f.calls["CreateContract"]++
	if f.failCreateContract {
		return nil, errFakeGateway
	}
	contract := model.Contract{
		ID:           uuid.New(),
		ContractName: input.ContractName,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	f.contracts = append(f.contracts, contract)
	return &contract, nil
}

func (f *fakeGateway) UpdateContract(ctx context.Context, id uuid.UUID, input gateway.ContractInput) (*model.Contract, error) {
	f.calls["UpdateContract"]++
	if f.failUpdateContract {
		return nil, errFakeGateway
	}
	for i := range f.contracts {
		if f.contracts[i].ID == id {
			f.contracts[i].ContractName = input.ContractName
			f.contracts[i].StartDate = input.StartDate
			f.contracts[i].EndDate = input.EndDate
			contract := f.contracts[i]
			return &contract, nil
		}
	}
	return nil, errFakeGateway
}

func (f *fakeGateway) DeleteContract(ctx context.Context, id uuid.UUID) error {
	f.calls["DeleteContract"]++
	if f.failDeleteContract {
		return errFakeGateway
	}
	for i := range f.contracts {
		if f.contracts[i].ID == id {
			f.contracts = append(f.contracts[:i], f.contracts[i+1:]...)
			break
		}
	}
	kept := f.points[:0]
	for _, point := range f.points {
		if point.ContractID != id {
			kept = append(kept, point)
		}
	}
	f.points = kept
	return nil
}

func (f *fakeGateway) ListPoints(ctx context.Context, contractID uuid.UUID) ([]model.Point, error) {
	f.calls["ListPoints"]++
	if f.failListPoints {
		return nil, errFakeGateway
	}
	var out []model.Point
	for _, point := range f.points {
		if point.ContractID == contractID {
			out = append(out, point)
		}
	}
	if f.listPointsHook != nil {
		hook := f.listPointsHook
		f.listPointsHook = nil
		hook(contractID)
	}
	return out, nil
}

func (f *fakeGateway) CreatePoint(ctx context.Context, input gateway.PointInput) (*model.Point, error) {
	f.calls["CreatePoint"]++
	if f.failCreatePoint {
		return nil, errFakeGateway
	}
	point := model.Point{
		ID:         uuid.New(),
		ContractID: input.ContractID,
		Point:      input.Point,
		Value:      input.Value,
	}
	f.points = append(f.points, point)
	return &point, nil
}

func (f *fakeGateway) UpdatePoint(ctx context.Context, id uuid.UUID, input gateway.PointInput) (*model.Point, error) {
	f.calls["UpdatePoint"]++
	if f.failUpdatePoint {
		return nil, errFakeGateway
	}
	for i := range f.points {
		if f.points[i].ID == id {
			f.points[i].Point = input.Point
			f.points[i].Value = input.Value
			point := f.points[i]
			return &point, nil
		}
	}
	return nil, errFakeGateway
}

func (f *fakeGateway) DeletePoint(ctx context.Context, id uuid.UUID) error {
	f.calls["DeletePoint"]++
	if f.failDeletePoint {
		return errFakeGateway
	}
	for i := range f.points {
		if f.points[i].ID == id {
			f.points = append(f.points[:i], f.points[i+1:]...)
			break
		}
	}
	return nil
}
