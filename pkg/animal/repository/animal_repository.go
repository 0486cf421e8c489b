package repository

import (
	"context"

	"dalu/entities"
	"dalu/pkg/schema"
)

type AnimalRepository interface {
	List(ctx context.Context, p schema.ListParams) ([]entities.Animal, int64, error)
	Create(ctx context.Context, a *entities.Animal) error
	FindByID(ctx context.Context, id uint) (*entities.Animal, error)
	Save(ctx context.Context, a *entities.Animal) error
	Delete(ctx context.Context, id uint) error
}
