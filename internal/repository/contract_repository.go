package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-console/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) List(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_name, start_date, end_date
		FROM contracts
		ORDER BY created_at, id
	`).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_name, start_date, end_date
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *ContractRepository) Create(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	contract.ID = uuid.New()
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO contracts (id, contract_name, start_date, end_date)
		VALUES (?, ?, ?, ?)
	`, contract.ID, contract.ContractName, contract.StartDate, contract.EndDate).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) Update(ctx context.Context, contract model.Contract) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET contract_name = ?, start_date = ?, end_date = ?
		WHERE id = ?
	`, contract.ContractName, contract.StartDate, contract.EndDate, contract.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a contract together with its points. Points are deleted
// explicitly so the behavior does not depend on FK cascade support.
func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM points WHERE contract_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM contracts WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
