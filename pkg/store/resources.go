package store

import (
	"context"

	"dalu/entities"
	"dalu/pkg/schema"
)

type AnimalStore = Store[entities.Animal, schema.AnimalCreate, schema.AnimalUpdate]

type FlowerStore = Store[entities.Flower, schema.FlowerCreate, schema.FlowerUpdate]

// AnimalAPI is satisfied by *client.Animals.
type AnimalAPI interface {
	API[entities.Animal, schema.AnimalCreate, schema.AnimalUpdate]
	List(ctx context.Context, p schema.ListParams) (*schema.ListResponse[entities.Animal], error)
}

// FlowerAPI is satisfied by *client.Flowers.
type FlowerAPI interface {
	API[entities.Flower, schema.FlowerCreate, schema.FlowerUpdate]
	List(ctx context.Context, p schema.ListParams) (*schema.ListResponse[entities.Flower], error)
}

// NewAnimalStore fetches the server's default page.
func NewAnimalStore(api AnimalAPI, msgs Messages) *AnimalStore {
	return New[entities.Animal, schema.AnimalCreate, schema.AnimalUpdate](api, func(ctx context.Context) (*schema.ListResponse[entities.Animal], error) {
		return api.List(ctx, schema.ListParams{})
	}, msgs)
}

func NewFlowerStore(api FlowerAPI, msgs Messages) *FlowerStore {
	return New[entities.Flower, schema.FlowerCreate, schema.FlowerUpdate](api, func(ctx context.Context) (*schema.ListResponse[entities.Flower], error) {
		return api.List(ctx, schema.ListParams{})
	}, msgs)
}
