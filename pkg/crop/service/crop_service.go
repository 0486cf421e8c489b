package service

import (
	"context"

	"dalu/entities"
	"dalu/pkg/schema"
)

type CropService interface {
	List(ctx context.Context, p schema.CropListParams) (*schema.ListResponse[entities.Crop], error)
	Get(ctx context.Context, id uint) (*entities.Crop, error)
	Create(ctx context.Context, in schema.CropCreate) (*entities.Crop, error)
	Update(ctx context.Context, id uint, in schema.CropUpdate) (*entities.Crop, error)
	Delete(ctx context.Context, id uint) error
	Harvest(ctx context.Context, id uint, in schema.CropHarvest) (*entities.Crop, error)
}
