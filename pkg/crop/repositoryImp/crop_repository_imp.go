package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"dalu/entities"
	"dalu/pkg/crop/repository"
	"dalu/pkg/schema"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) List(ctx context.Context, p schema.CropListParams) ([]entities.Crop, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Crop{})
	if p.Status != "" {
		q = q.Where("status = ?", p.Status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	// SortBy is whitelisted by schema.ParseCropListParams
	order := p.SortBy + " " + p.SortOrder + ", id " + p.SortOrder
	out := []entities.Crop{}
	if err := q.Order(order).Offset(p.Skip).Limit(p.Limit).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cropRepo) FindByID(ctx context.Context, id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) Save(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cropRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("crop_id = ?", id).Delete(&entities.YieldRecord{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entities.Crop{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *cropRepo) SaveHarvest(ctx context.Context, c *entities.Crop, rec *entities.YieldRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		return tx.Create(rec).Error
	})
}
