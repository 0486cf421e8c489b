package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"dalu/entities"
	"dalu/pkg/flower/repository"
	"dalu/pkg/schema"
)

type flowerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FlowerRepository { return &flowerRepo{db} }

func (r *flowerRepo) List(ctx context.Context, p schema.ListParams) ([]entities.Flower, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Flower{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	out := []entities.Flower{}
	err := q.Order("plant_date desc, id desc").Offset(p.Skip).Limit(p.Limit).Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *flowerRepo) Create(ctx context.Context, f *entities.Flower) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *flowerRepo) FindByID(ctx context.Context, id uint) (*entities.Flower, error) {
	var f entities.Flower
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *flowerRepo) Save(ctx context.Context, f *entities.Flower) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *flowerRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Flower{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
