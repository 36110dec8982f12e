package console

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/contract-console/internal/gateway"
	"github.com/nurpe/contract-console/internal/model"
)

// Gateway is the slice of the remote service the console consumes. The
// production implementation is gateway.Client; tests substitute an
// in-memory fake.
type Gateway interface {
	Login(ctx context.Context, id, password string) error
	ListContracts(ctx context.Context) ([]model.Contract, error)
	ListContractSummaries(ctx context.Context) ([]model.ContractSummary, error)
	CreateContract(ctx context.Context, input gateway.ContractInput) (*model.Contract, error)
	UpdateContract(ctx context.Context, id uuid.UUID, input gateway.ContractInput) (*model.Contract, error)
	DeleteContract(ctx context.Context, id uuid.UUID) error
	ListPoints(ctx context.Context, contractID uuid.UUID) ([]model.Point, error)
	CreatePoint(ctx context.Context, input gateway.PointInput) (*model.Point, error)
	UpdatePoint(ctx context.Context, id uuid.UUID, input gateway.PointInput) (*model.Point, error)
	DeletePoint(ctx context.Context, id uuid.UUID) error
}
