package serviceImp

import (
	"context"
	"fmt"

	"dalu/entities"
	repo "dalu/pkg/crop/repository"
	"dalu/pkg/crop/service"
	"dalu/pkg/schema"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) List(ctx context.Context, p schema.CropListParams) (*schema.ListResponse[entities.Crop], error) {
	items, total, err := s.r.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	return &schema.ListResponse[entities.Crop]{Items: items, Total: total, Skip: p.Skip, Limit: p.Limit}, nil
}

func (s *cropSvc) Get(ctx context.Context, id uint) (*entities.Crop, error) {
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) Create(ctx context.Context, in schema.CropCreate) (*entities.Crop, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c := in.Entity()
	if err := s.r.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("create crop: %w", err)
	}
	return &c, nil
}

func (s *cropSvc) Update(ctx context.Context, id uint, in schema.CropUpdate) (*entities.Crop, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(c)
	if err := s.r.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("update crop %d: %w", id, err)
	}
	return c, nil
}

func (s *cropSvc) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}

// Harvest marks the crop harvested, replaces its total yield and logs the
// harvest as a yield record.
func (s *cropSvc) Harvest(ctx context.Context, id uint, in schema.CropHarvest) (*entities.Crop, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := in.Apply(c)
	if err := s.r.SaveHarvest(ctx, c, &rec); err != nil {
		return nil, fmt.Errorf("harvest crop %d: %w", id, err)
	}
	return c, nil
}
