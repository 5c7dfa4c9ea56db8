package repository

import (
	"context"

	"gorm.io/gorm"

	"motabe/backend/internal/model"
)

// LocationRepository 督导地点数据访问接口
type LocationRepository interface {
	Create(ctx context.Context, location *model.Location) error
	GetByID(ctx context.Context, id string) (*model.Location, error)
	Update(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.Location, error)
	ListActive(ctx context.Context) ([]model.Location, error)
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var location model.Location
	err := r.db.WithContext(ctx).
		Where("location_id = ?", id).
		First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepo) Update(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("location_id = ?", id).
		Delete(&model.Location{}).Error
}

func (r *locationRepo) ListAll(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Order("is_default DESC, name ASC").
		Find(&locations).Error
	return locations, err
}

func (r *locationRepo) ListActive(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("is_default DESC, name ASC").
		Find(&locations).Error
	return locations, err
}
