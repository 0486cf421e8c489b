package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"dalu/entities"
	"dalu/pkg/schema"
)

// resource implements the CRUD endpoints shared by crops, animals and
// flowers. T is the entity, C the create payload and U the update payload.
type resource[T, C, U any] struct {
	c    *Client
	path string
}

func (r resource[T, C, U]) item(id uint) string {
	return r.path + "/" + strconv.FormatUint(uint64(id), 10)
}

func (r resource[T, C, U]) list(ctx context.Context, q url.Values) (*schema.ListResponse[T], error) {
	var out schema.ListResponse[T]
	if err := r.c.do(ctx, http.MethodGet, r.path, q, nil, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []T{}
	}
	return &out, nil
}

func (r resource[T, C, U]) Get(ctx context.Context, id uint) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.item(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T, C, U]) Create(ctx context.Context, data C) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T, C, U]) Update(ctx context.Context, id uint, data U) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.item(id), nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T, C, U]) Delete(ctx context.Context, id uint) error {
	return r.c.do(ctx, http.MethodDelete, r.item(id), nil, nil, nil)
}

type Crops struct {
	resource[entities.Crop, schema.CropCreate, schema.CropUpdate]
}

func (r *Crops) List(ctx context.Context, p schema.CropListParams) (*schema.ListResponse[entities.Crop], error) {
	return r.list(ctx, p.Values())
}

// Harvest marks a crop harvested with its final yield.
func (r *Crops) Harvest(ctx context.Context, id uint, data schema.CropHarvest) (*entities.Crop, error) {
	var out entities.Crop
	if err := r.c.do(ctx, http.MethodPatch, r.item(id)+"/harvest", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type Animals struct {
	resource[entities.Animal, schema.AnimalCreate, schema.AnimalUpdate]
}

func (r *Animals) List(ctx context.Context, p schema.ListParams) (*schema.ListResponse[entities.Animal], error) {
	return r.list(ctx, p.Values())
}

type Flowers struct {
	resource[entities.Flower, schema.FlowerCreate, schema.FlowerUpdate]
}

func (r *Flowers) List(ctx context.Context, p schema.ListParams) (*schema.ListResponse[entities.Flower], error) {
	return r.list(ctx, p.Values())
}
