package store

import (
	"context"

	"dalu/entities"
	"dalu/pkg/schema"
)

// CropAPI is satisfied by *client.Crops.
type CropAPI interface {
	API[entities.Crop, schema.CropCreate, schema.CropUpdate]
	List(ctx context.Context, p schema.CropListParams) (*schema.ListResponse[entities.Crop], error)
	Harvest(ctx context.Context, id uint, data schema.CropHarvest) (*entities.Crop, error)
}

// DefaultCropParams is the first page, newest plantings first.
func DefaultCropParams() schema.CropListParams {
	return schema.CropListParams{
		ListParams: schema.ListParams{Skip: 0, Limit: schema.DefaultLimit},
		SortBy:     "plant_date",
		SortOrder:  schema.SortDesc,
	}
}

// CropParamsPatch sets the non-nil fields on the current params.
type CropParamsPatch struct {
	Skip      *int
	Limit     *int
	Status    *string
	SortBy    *string
	SortOrder *string
}

type CropStore struct {
	*Store[entities.Crop, schema.CropCreate, schema.CropUpdate]
	api    CropAPI
	params schema.CropListParams
}

func NewCropStore(api CropAPI, msgs Messages) *CropStore {
	cs := &CropStore{api: api, params: DefaultCropParams()}
	cs.Store = New[entities.Crop, schema.CropCreate, schema.CropUpdate](api, func(ctx context.Context) (*schema.ListResponse[entities.Crop], error) {
		return api.List(ctx, cs.Params())
	}, msgs)
	return cs
}

func (s *CropStore) Params() schema.CropListParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// SetParams merges p into the params used by the next Fetch.
func (s *CropStore) SetParams(p CropParamsPatch) {
	s.mu.Lock()
	if p.Skip != nil {
		s.params.Skip = *p.Skip
	}
	if p.Limit != nil {
		s.params.Limit = *p.Limit
	}
	if p.Status != nil {
		s.params.Status = *p.Status
	}
	if p.SortBy != nil {
		s.params.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		s.params.SortOrder = *p.SortOrder
	}
	s.mu.Unlock()
	s.notify()
}

func (s *CropStore) GrowingCrops() []entities.Crop {
	return s.byStatus(entities.CropGrowing)
}

func (s *CropStore) HarvestedCrops() []entities.Crop {
	return s.byStatus(entities.CropHarvested)
}

func (s *CropStore) byStatus(st entities.CropStatus) []entities.Crop {
	out := []entities.Crop{}
	s.view(func(items []entities.Crop) {
		for _, c := range items {
			if c.Status == st {
				out = append(out, c)
			}
		}
	})
	return out
}

// TotalYield sums total_yield over the cached page regardless of unit.
func (s *CropStore) TotalYield() float64 {
	var sum float64
	s.view(func(items []entities.Crop) {
		for _, c := range items {
			sum += c.TotalYield
		}
	})
	return sum
}

// Harvest records a harvest and replaces the cached crop like Update.
func (s *CropStore) Harvest(ctx context.Context, id uint, data schema.CropHarvest) (*entities.Crop, error) {
	s.begin()
	out, err := s.api.Harvest(ctx, id, data)
	if err := s.end(err, s.msgs.Harvest, func() { s.replace(id, *out) }); err != nil {
		return nil, err
	}
	return out, nil
}
