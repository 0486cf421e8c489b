package store

import (
	"context"

	"dalu/pkg/schema"
)

// StatisticsAPI is satisfied by *client.Statistics.
type StatisticsAPI interface {
	Overview(ctx context.Context) (*schema.OverviewStats, error)
	Charts(ctx context.Context) (*schema.ChartDataResponse, error)
	Calendar(ctx context.Context, year int) (*schema.CalendarData, error)
}

type StatisticsStore struct {
	state
	api      StatisticsAPI
	msgs     Messages
	overview *schema.OverviewStats
	charts   *schema.ChartDataResponse
	calendar *schema.CalendarData
}

func NewStatisticsStore(api StatisticsAPI, msgs Messages) *StatisticsStore {
	return &StatisticsStore{api: api, msgs: msgs}
}

func (s *StatisticsStore) FetchOverview(ctx context.Context) error {
	s.begin()
	out, err := s.api.Overview(ctx)
	return s.end(err, s.msgs.Overview, func() { s.overview = out })
}

func (s *StatisticsStore) FetchChartData(ctx context.Context) error {
	s.begin()
	out, err := s.api.Charts(ctx)
	return s.end(err, s.msgs.Charts, func() { s.charts = out })
}

// FetchCalendar loads the events of year (0 for the current year).
func (s *StatisticsStore) FetchCalendar(ctx context.Context, year int) error {
	s.begin()
	out, err := s.api.Calendar(ctx, year)
	return s.end(err, s.msgs.Calendar, func() { s.calendar = out })
}

// Overview is nil until FetchOverview succeeds.
func (s *StatisticsStore) Overview() *schema.OverviewStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overview
}

func (s *StatisticsStore) ChartData() *schema.ChartDataResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.charts
}

func (s *StatisticsStore) Calendar() *schema.CalendarData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendar
}

func (s *StatisticsStore) Reset() {
	s.mu.Lock()
	s.overview = nil
	s.charts = nil
	s.calendar = nil
	s.err = ""
	s.mu.Unlock()
	s.notify()
}
