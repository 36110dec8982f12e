package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-console/internal/model"
)

type PointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) *PointRepository {
	return &PointRepository{db: db}
}

func (r *PointRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]model.Point, error) {
	var points []model.Point
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, point, value
		FROM points
		WHERE contract_id = ?
		ORDER BY created_at, id
	`, contractID).Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *PointRepository) ListAll(ctx context.Context) ([]model.Point, error) {
	var points []model.Point
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, point, value
		FROM points
		ORDER BY created_at, id
	`).Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *PointRepository) Get(ctx context.Context, id uuid.UUID) (*model.Point, error) {
	var point model.Point
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, point, value
		FROM points
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&point).Error
	if err != nil {
		return nil, err
	}
	if point.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &point, nil
}

func (r *PointRepository) Create(ctx context.Context, point model.Point) (*model.Point, error) {
	point.ID = uuid.New()
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO points (id, contract_id, point, value)
		VALUES (?, ?, ?, ?)
	`, point.ID, point.ContractID, point.Point, point.Value).Error
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// Update rewrites the label and value. The owning contract never changes.
func (r *PointRepository) Update(ctx context.Context, point model.Point) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE points
		SET point = ?, value = ?
		WHERE id = ?
	`, point.Point, point.Value, point.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM points WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
