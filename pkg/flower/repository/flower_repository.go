package repository

import (
	"context"

	"dalu/entities"
	"dalu/pkg/schema"
)

type FlowerRepository interface {
	List(ctx context.Context, p schema.ListParams) ([]entities.Flower, int64, error)
	Create(ctx context.Context, f *entities.Flower) error
	FindByID(ctx context.Context, id uint) (*entities.Flower, error)
	Save(ctx context.Context, f *entities.Flower) error
	Delete(ctx context.Context, id uint) error
}
