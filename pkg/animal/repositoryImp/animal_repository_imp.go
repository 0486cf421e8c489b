package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"dalu/entities"
	"dalu/pkg/animal/repository"
	"dalu/pkg/schema"
)

type animalRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnimalRepository { return &animalRepo{db} }

func (r *animalRepo) List(ctx context.Context, p schema.ListParams) ([]entities.Animal, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Animal{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	out := []entities.Animal{}
	err := q.Order("acquire_date desc, id desc").Offset(p.Skip).Limit(p.Limit).Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *animalRepo) Create(ctx context.Context, a *entities.Animal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *animalRepo) FindByID(ctx context.Context, id uint) (*entities.Animal, error) {
	var a entities.Animal
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *animalRepo) Save(ctx context.Context, a *entities.Animal) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *animalRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Animal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
