package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dalu/pkg/schema"
)

type Statistics struct{ c *Client }

func get[T any](ctx context.Context, c *Client, path string, q url.Values) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Statistics) Overview(ctx context.Context) (*schema.OverviewStats, error) {
	return get[schema.OverviewStats](ctx, s.c, "/statistics/overview", nil)
}

func (s *Statistics) Crops(ctx context.Context) (*schema.CropStats, error) {
	return get[schema.CropStats](ctx, s.c, "/statistics/crops", nil)
}

func (s *Statistics) Animals(ctx context.Context) (*schema.AnimalStats, error) {
	return get[schema.AnimalStats](ctx, s.c, "/statistics/animals", nil)
}

func (s *Statistics) Flowers(ctx context.Context) (*schema.FlowerStats, error) {
	return get[schema.FlowerStats](ctx, s.c, "/statistics/flowers", nil)
}

func (s *Statistics) Charts(ctx context.Context) (*schema.ChartDataResponse, error) {
	return get[schema.ChartDataResponse](ctx, s.c, "/statistics/charts", nil)
}

// Calendar returns the plant and harvest events of year; 0 means the
// current year.
func (s *Statistics) Calendar(ctx context.Context, year int) (*schema.CalendarData, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return get[schema.CalendarData](ctx, s.c, "/statistics/calendar", url.Values{"year": {strconv.Itoa(year)}})
}
