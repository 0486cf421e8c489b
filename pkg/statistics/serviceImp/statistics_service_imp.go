package serviceImp

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"dalu/entities"
	"dalu/pkg/schema"
	repo "dalu/pkg/statistics/repository"
	"dalu/pkg/statistics/service"
)

type statsSvc struct{ r repo.StatisticsRepository }

func NewStatisticsService(r repo.StatisticsRepository) service.StatisticsService {
	return &statsSvc{r}
}

func (s *statsSvc) Overview(ctx context.Context) (*schema.OverviewStats, error) {
	o, err := s.r.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	return &o, nil
}

func (s *statsSvc) Crops(ctx context.Context) (*schema.CropStats, error) {
	yield, err := s.r.CropYieldByVariety(ctx)
	if err != nil {
		return nil, fmt.Errorf("crop yield by variety: %w", err)
	}
	status, err := s.r.CropCountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("crop count by status: %w", err)
	}
	return &schema.CropStats{
		ByVariety: asFloatMap(yield),
		ByStatus:  asCountMap(status),
	}, nil
}

func (s *statsSvc) Animals(ctx context.Context) (*schema.AnimalStats, error) {
	product, err := s.r.AnimalQuantityBy(ctx, repo.ByProductType)
	if err != nil {
		return nil, fmt.Errorf("animals by product type: %w", err)
	}
	variety, err := s.r.AnimalQuantityBy(ctx, repo.ByVariety)
	if err != nil {
		return nil, fmt.Errorf("animals by variety: %w", err)
	}
	return &schema.AnimalStats{
		ByProductType: asCountMap(product),
		ByVariety:     asCountMap(variety),
	}, nil
}

func (s *statsSvc) Flowers(ctx context.Context) (*schema.FlowerStats, error) {
	season, err := s.r.FlowerQuantityBy(ctx, repo.BySeason)
	if err != nil {
		return nil, fmt.Errorf("flowers by season: %w", err)
	}
	purpose, err := s.r.FlowerQuantityBy(ctx, repo.ByPurpose)
	if err != nil {
		return nil, fmt.Errorf("flowers by purpose: %w", err)
	}
	return &schema.FlowerStats{
		BySeason:  asCountMap(season),
		ByPurpose: asCountMap(purpose),
	}, nil
}

func (s *statsSvc) Charts(ctx context.Context) (*schema.ChartDataResponse, error) {
	yield, err := s.r.CropYieldByVariety(ctx)
	if err != nil {
		return nil, fmt.Errorf("crop yield chart: %w", err)
	}
	status, err := s.r.CropCountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("crop status chart: %w", err)
	}
	product, err := s.r.AnimalQuantityBy(ctx, repo.ByProductType)
	if err != nil {
		return nil, fmt.Errorf("animal product chart: %w", err)
	}
	season, err := s.r.FlowerQuantityBy(ctx, repo.BySeason)
	if err != nil {
		return nil, fmt.Errorf("flower season chart: %w", err)
	}
	return &schema.ChartDataResponse{
		CropYieldByVariety: chart("Crop yield by variety", "bar", yield, false),
		CropStatusPie:      chart("Crop status distribution", "pie", status, true),
		AnimalByProduct:    chart("Animals by product type", "pie", product, true),
		FlowerBySeason:     chart("Flowers by bloom season", "bar", season, true),
	}, nil
}

func (s *statsSvc) Calendar(ctx context.Context, year int) (*schema.CalendarData, error) {
	crops, err := s.r.Crops(ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar crops: %w", err)
	}
	flowers, err := s.r.Flowers(ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar flowers: %w", err)
	}

	events := []schema.CalendarEvent{}
	add := func(d entities.Date, title, typ, category string) {
		if d.IsZero() || d.Year() != year {
			return
		}
		events = append(events, schema.CalendarEvent{
			Date: d.String(), Title: title, Type: typ, Category: category, Count: 1,
		})
	}
	for _, c := range crops {
		add(c.PlantDate, "Plant "+c.Name, schema.EventPlant, schema.CategoryCrop)
		if c.ExpectedHarvestDate != nil {
			add(*c.ExpectedHarvestDate, "Expected harvest "+c.Name, schema.EventHarvest, schema.CategoryCrop)
		}
		if c.ActualHarvestDate != nil {
			add(*c.ActualHarvestDate, "Harvest "+c.Name, schema.EventHarvest, schema.CategoryCrop)
		}
	}
	for _, f := range flowers {
		add(f.PlantDate, "Plant "+f.Name, schema.EventPlant, schema.CategoryFlower)
	}
	slices.SortStableFunc(events, func(a, b schema.CalendarEvent) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return &schema.CalendarData{Events: events}, nil
}

// asCountMap drops NULL groups.
func asCountMap(bs []repo.Bucket) map[string]int64 {
	m := make(map[string]int64, len(bs))
	for _, b := range bs {
		if b.Label != nil {
			m[*b.Label] = int64(b.Amount)
		}
	}
	return m
}

func asFloatMap(bs []repo.Bucket) map[string]float64 {
	m := make(map[string]float64, len(bs))
	for _, b := range bs {
		if b.Label != nil {
			m[*b.Label] = b.Amount
		}
	}
	return m
}

func chart(title, typ string, bs []repo.Bucket, counts bool) schema.ChartData {
	labels := make([]string, 0, len(bs))
	ints := make([]int64, 0, len(bs))
	floats := make([]float64, 0, len(bs))
	for _, b := range bs {
		if b.Label == nil {
			continue
		}
		labels = append(labels, *b.Label)
		ints = append(ints, int64(b.Amount))
		floats = append(floats, b.Amount)
	}
	var data any = floats
	if counts {
		data = ints
	}
	return schema.ChartData{
		Title:    title,
		Type:     typ,
		Labels:   labels,
		Datasets: []map[string]any{{"label": title, "data": data}},
	}
}
