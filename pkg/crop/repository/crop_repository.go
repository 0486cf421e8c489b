package repository

import (
	"context"

	"dalu/entities"
	"dalu/pkg/schema"
)

type CropRepository interface {
	List(ctx context.Context, p schema.CropListParams) ([]entities.Crop, int64, error)
	Create(ctx context.Context, c *entities.Crop) error
	FindByID(ctx context.Context, id uint) (*entities.Crop, error)
	Save(ctx context.Context, c *entities.Crop) error
	Delete(ctx context.Context, id uint) error
	// SaveHarvest persists the harvested crop and its yield record atomically.
	SaveHarvest(ctx context.Context, c *entities.Crop, rec *entities.YieldRecord) error
}
