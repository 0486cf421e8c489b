package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dalu/entities"
	"dalu/pkg/schema"
	"dalu/pkg/statistics/repository"
)

type statsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StatisticsRepository { return &statsRepo{db} }

func (r *statsRepo) Overview(ctx context.Context) (schema.OverviewStats, error) {
	var o schema.OverviewStats
	db := r.db.WithContext(ctx)
	crops := func() *gorm.DB { return db.Model(&entities.Crop{}) }
	animals := func() *gorm.DB { return db.Model(&entities.Animal{}) }
	flowers := func() *gorm.DB { return db.Model(&entities.Flower{}) }

	var animalQty, flowerQty float64
	steps := []*gorm.DB{
		crops().Count(&o.TotalCrops),
		crops().Where("status = ?", entities.CropGrowing).Count(&o.GrowingCrops),
		crops().Where("status = ?", entities.CropHarvested).Count(&o.HarvestedCrops),
		crops().Select("COALESCE(SUM(total_yield), 0)").Scan(&o.TotalCropYield),
		animals().Distinct("variety").Count(&o.TotalAnimalVarieties),
		animals().Select("COALESCE(SUM(quantity), 0)").Scan(&animalQty),
		animals().Select("COALESCE(SUM(estimated_daily_yield), 0)").Scan(&o.EstimatedDailyYield),
		flowers().Distinct("variety").Count(&o.TotalFlowerVarieties),
		flowers().Select("COALESCE(SUM(quantity), 0)").Scan(&flowerQty),
	}
	for _, s := range steps {
		if s.Error != nil {
			return schema.OverviewStats{}, s.Error
		}
	}
	o.TotalAnimals = int64(animalQty)
	o.TotalFlowers = int64(flowerQty)
	return o, nil
}

func (r *statsRepo) CropYieldByVariety(ctx context.Context) ([]repository.Bucket, error) {
	return r.group(ctx, &entities.Crop{}, "variety", "SUM(total_yield)")
}

func (r *statsRepo) CropCountByStatus(ctx context.Context) ([]repository.Bucket, error) {
	return r.group(ctx, &entities.Crop{}, "status", "COUNT(id)")
}

func (r *statsRepo) AnimalQuantityBy(ctx context.Context, column string) ([]repository.Bucket, error) {
	switch column {
	case repository.ByVariety, repository.ByProductType:
	default:
		return nil, fmt.Errorf("animal grouping %q not supported", column)
	}
	return r.group(ctx, &entities.Animal{}, column, "SUM(quantity)")
}

func (r *statsRepo) FlowerQuantityBy(ctx context.Context, column string) ([]repository.Bucket, error) {
	switch column {
	case repository.BySeason, repository.ByPurpose:
	default:
		return nil, fmt.Errorf("flower grouping %q not supported", column)
	}
	return r.group(ctx, &entities.Flower{}, column, "SUM(quantity)")
}

// group runs SELECT column, agg ... GROUP BY column ordered by label. Both
// arguments come from constants above, never from request input.
func (r *statsRepo) group(ctx context.Context, model any, column, agg string) ([]repository.Bucket, error) {
	out := []repository.Bucket{}
	err := r.db.WithContext(ctx).Model(model).
		Select(column + " AS label, COALESCE(" + agg + ", 0) AS amount").
		Group(column).
		Order(column).
		Scan(&out).Error
	return out, err
}

func (r *statsRepo) Crops(ctx context.Context) ([]entities.Crop, error) {
	out := []entities.Crop{}
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *statsRepo) Flowers(ctx context.Context) ([]entities.Flower, error) {
	out := []entities.Flower{}
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
