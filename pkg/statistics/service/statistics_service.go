package service

import (
	"context"

	"dalu/pkg/schema"
)

type StatisticsService interface {
	Overview(ctx context.Context) (*schema.OverviewStats, error)
	Crops(ctx context.Context) (*schema.CropStats, error)
	Animals(ctx context.Context) (*schema.AnimalStats, error)
	Flowers(ctx context.Context) (*schema.FlowerStats, error)
	Charts(ctx context.Context) (*schema.ChartDataResponse, error)
	// Calendar lists plant and harvest events dated within year.
	Calendar(ctx context.Context, year int) (*schema.CalendarData, error)
}
