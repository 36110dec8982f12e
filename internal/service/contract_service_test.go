package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nurpe/contract-console/internal/model"
	"github.com/nurpe/contract-console/internal/repository"
)

func newTestServices(t *testing.T) (*ContractService, *PointService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")

	require.NoError(t, db.Exec(`CREATE TABLE contracts (
		id TEXT PRIMARY KEY,
		contract_name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE points (
		id TEXT PRIMARY KEY,
		contract_id TEXT NOT NULL,
		point TEXT NOT NULL DEFAULT '',
		value TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`).Error)

	contractRepo := repository.NewContractRepository(db)
	pointRepo := repository.NewPointRepository(db)
	return NewContractService(contractRepo, pointRepo), NewPointService(pointRepo, contractRepo)
}

func TestContractService_Validation(t *testing.T) {
	contracts, _ := newTestServices(t)
	ctx := context.Background()

	_, err := contracts.Create(ctx, ContractInput{StartDate: "2024-01-01", EndDate: "2024-12-31"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = contracts.Create(ctx, ContractInput{ContractName: "Lease A", EndDate: "2024-12-31"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = contracts.Create(ctx, ContractInput{ContractName: "Lease A", StartDate: "2024-01-01"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = contracts.Create(ctx, ContractInput{
		ContractName: "Lease A",
		StartDate:    "2024-06-01",
		EndDate:      "2024-01-01",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestContractService_UpdateIsNotDuplicate(t *testing.T) {
	contracts, _ := newTestServices(t)
	ctx := context.Background()

	created, err := contracts.Create(ctx, ContractInput{
		ContractName: "Lease A",
		StartDate:    "2024-01-01",
		EndDate:      "2024-12-31",
	})
	require.NoError(t, err)

	_, err = contracts.Update(ctx, created.ID, ContractInput{
		ContractName: "Lease A",
		StartDate:    "2024-01-01",
		EndDate:      "2025-01-31",
	})
	require.NoError(t, err)

	listed, err := contracts.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "2025-01-31", listed[0].EndDate)

	_, err = contracts.Update(ctx, uuid.New(), ContractInput{
		ContractName: "ghost",
		StartDate:    "2024-01-01",
		EndDate:      "2024-12-31",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestContractService_SummariesAggregatePoints(t *testing.T) {
	contracts, points := newTestServices(t)
	ctx := context.Background()

	withPoints, err := contracts.Create(ctx, ContractInput{
		ContractName: "Lease A",
		StartDate:    "2024-01-01",
		EndDate:      "2024-12-31",
	})
	require.NoError(t, err)
	bare, err := contracts.Create(ctx, ContractInput{
		ContractName: "Lease B",
		StartDate:    "2024-01-01",
		EndDate:      "2024-12-31",
	})
	require.NoError(t, err)

	for _, value := range []string{"10.5", "abc", "4"} {
		_, err = points.Create(ctx, PointInput{ContractID: withPoints.ID, Point: "item", Value: value})
		require.NoError(t, err)
	}

	summaries, err := contracts.ListSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[uuid.UUID]model.ContractSummary{}
	for _, summary := range summaries {
		byID[summary.ID] = summary
	}
	require.Equal(t, int64(3), byID[withPoints.ID].TotalPoints)
	require.InDelta(t, 14.5, byID[withPoints.ID].TotalValue, 1e-9)
	require.Equal(t, int64(0), byID[bare.ID].TotalPoints)
	require.Zero(t, byID[bare.ID].TotalValue)
}

func TestPointService_RequiresExistingContract(t *testing.T) {
	contracts, points := newTestServices(t)
	ctx := context.Background()

	_, err := points.Create(ctx, PointInput{ContractID: uuid.New(), Point: "orphan", Value: "1"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = points.Create(ctx, PointInput{Point: "no contract", Value: "1"})
	require.ErrorIs(t, err, ErrInvalidInput)

	contract, err := contracts.Create(ctx, ContractInput{
		ContractName: "Lease A",
		StartDate:    "2024-01-01",
		EndDate:      "2024-12-31",
	})
	require.NoError(t, err)

	created, err := points.Create(ctx, PointInput{ContractID: contract.ID, Point: "fee", Value: ""})
	require.NoError(t, err, "empty label/value is allowed")
	require.NotEqual(t, uuid.Nil, created.ID)

	updated, err := points.Update(ctx, created.ID, PointInput{Point: "fee", Value: "25"})
	require.NoError(t, err)
	require.Equal(t, contract.ID, updated.ContractID)
	require.Equal(t, "25", updated.Value)

	require.ErrorIs(t, points.Delete(ctx, uuid.New()), ErrNotFound)
	require.NoError(t, points.Delete(ctx, created.ID))
}
