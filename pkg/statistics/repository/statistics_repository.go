package repository

import (
	"context"

	"dalu/entities"
	"dalu/pkg/schema"
)

// Bucket is one GROUP BY row. Label is nil for rows grouped on a NULL column.
type Bucket struct {
	Label  *string
	Amount float64
}

type StatisticsRepository interface {
	Overview(ctx context.Context) (schema.OverviewStats, error)
	CropYieldByVariety(ctx context.Context) ([]Bucket, error)
	CropCountByStatus(ctx context.Context) ([]Bucket, error)
	AnimalQuantityBy(ctx context.Context, column string) ([]Bucket, error)
	FlowerQuantityBy(ctx context.Context, column string) ([]Bucket, error)
	Crops(ctx context.Context) ([]entities.Crop, error)
	Flowers(ctx context.Context) ([]entities.Flower, error)
}

// Grouping columns accepted by AnimalQuantityBy and FlowerQuantityBy.
const (
	ByVariety     = "variety"
	ByProductType = "product_type"
	BySeason      = "bloom_season"
	ByPurpose     = "purpose"
)
