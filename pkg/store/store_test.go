package store

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dalu/entities"
	"dalu/pkg/client"
	"dalu/pkg/schema"
)

// fakeCrops records the params it was listed with and answers from memory.
type fakeCrops struct {
	mu       sync.Mutex
	page     schema.ListResponse[entities.Crop]
	err      error
	lastList schema.CropListParams
	nextID   uint
	block    chan struct{}
}

func (f *fakeCrops) List(_ context.Context, p schema.CropListParams) (*schema.ListResponse[entities.Crop], error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = p
	if f.err != nil {
		return nil, f.err
	}
	page := f.page
	return &page, nil
}

func (f *fakeCrops) Create(_ context.Context, in schema.CropCreate) (*entities.Crop, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	c := in.Entity()
	c.ID = 100 + f.nextID
	return &c, nil
}

func (f *fakeCrops) Update(_ context.Context, id uint, in schema.CropUpdate) (*entities.Crop, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := entities.Crop{ID: id, Status: entities.CropGrowing}
	in.Apply(&c)
	return &c, nil
}

func (f *fakeCrops) Delete(_ context.Context, _ uint) error { return f.err }

func (f *fakeCrops) Harvest(_ context.Context, id uint, in schema.CropHarvest) (*entities.Crop, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := entities.Crop{ID: id, Status: entities.CropGrowing}
	in.Apply(&c)
	return &c, nil
}

func crop(id uint, status entities.CropStatus, yield float64) entities.Crop {
	return entities.Crop{ID: id, Name: "crop", Status: status, TotalYield: yield}
}

func ids(cs []entities.Crop) []uint {
	out := make([]uint, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func fetched(t *testing.T, items ...entities.Crop) (*CropStore, *fakeCrops) {
	t.Helper()
	api := &fakeCrops{page: schema.ListResponse[entities.Crop]{Items: items, Total: int64(len(items))}}
	s := NewCropStore(api, MessagesFor("en"))
	require.NoError(t, s.Fetch(context.Background()))
	return s, api
}

func TestFetchReplacesListAndTotal(t *testing.T) {
	items := []entities.Crop{crop(1, entities.CropGrowing, 0), crop(2, entities.CropHarvested, 5)}
	api := &fakeCrops{page: schema.ListResponse[entities.Crop]{Items: items, Total: 42}}
	s := NewCropStore(api, MessagesFor("en"))

	require.NoError(t, s.Fetch(context.Background()))
	if diff := cmp.Diff(items, s.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	assert.EqualValues(t, 42, s.Total())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Err())
	assert.Equal(t, DefaultCropParams(), api.lastList)
}

func TestDerivedViews(t *testing.T) {
	s, _ := fetched(t, crop(1, entities.CropGrowing, 10), crop(2, entities.CropHarvested, 20))

	assert.Equal(t, 30.0, s.TotalYield())
	assert.Equal(t, []uint{1}, ids(s.GrowingCrops()))
	assert.Equal(t, []uint{2}, ids(s.HarvestedCrops()))
}

func TestDerivedViewsEmpty(t *testing.T) {
	s := NewCropStore(&fakeCrops{}, MessagesFor("en"))
	assert.Zero(t, s.TotalYield())
	assert.Empty(t, s.GrowingCrops())
	assert.NotNil(t, s.Items())
}

func TestCreatePrepends(t *testing.T) {
	s, _ := fetched(t, crop(1, entities.CropGrowing, 0), crop(2, entities.CropGrowing, 0))

	c, err := s.Create(context.Background(), schema.CropCreate{Name: "Oat", Variety: "x", Area: 1})
	require.NoError(t, err)
	assert.Equal(t, []uint{c.ID, 1, 2}, ids(s.Items()))
	assert.EqualValues(t, 3, s.Total())
}

func TestUpdateReplacesInPlace(t *testing.T) {
	s, _ := fetched(t, crop(1, entities.CropGrowing, 0), crop(2, entities.CropGrowing, 0), crop(3, entities.CropGrowing, 0))

	name := "renamed"
	_, err := s.Update(context.Background(), 2, schema.CropUpdate{Name: &name})
	require.NoError(t, err)
	items := s.Items()
	assert.Equal(t, []uint{1, 2, 3}, ids(items))
	assert.Equal(t, "renamed", items[1].Name)

	// unknown ids leave the list alone
	_, err = s.Update(context.Background(), 99, schema.CropUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids(s.Items()))
	assert.EqualValues(t, 3, s.Total())
}

func TestDeleteRemoves(t *testing.T) {
	s, _ := fetched(t, crop(1, entities.CropGrowing, 0), crop(2, entities.CropGrowing, 0))

	require.NoError(t, s.Delete(context.Background(), 1))
	assert.Equal(t, []uint{2}, ids(s.Items()))
	assert.EqualValues(t, 1, s.Total())
}

func TestHarvestReplaces(t *testing.T) {
	s, _ := fetched(t, crop(1, entities.CropGrowing, 0), crop(2, entities.CropGrowing, 0))

	_, err := s.Harvest(context.Background(), 1, schema.CropHarvest{
		ActualHarvestDate: entities.NewDate(2024, 9, 1), YieldQuantity: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, s.TotalYield())
	assert.Equal(t, []uint{1}, ids(s.HarvestedCrops()))
	assert.Len(t, s.Items(), 2)
}

func TestFailuresKeepListAndRecordMessage(t *testing.T) {
	s, api := fetched(t, crop(1, entities.CropGrowing, 0))
	ctx := context.Background()

	api.err = &client.Error{Method: http.MethodDelete, Path: "/crops/1", Status: http.StatusNotFound, Detail: "crop not found"}
	err := s.Delete(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, "crop not found", s.Err())
	assert.Equal(t, []uint{1}, ids(s.Items()))
	assert.EqualValues(t, 1, s.Total())

	api.err = errors.New("connection refused")
	_, err = s.Create(ctx, schema.CropCreate{})
	require.Error(t, err)
	assert.Equal(t, "Failed to create", s.Err())
	assert.Len(t, s.Items(), 1)

	require.Error(t, s.Fetch(ctx))
	assert.Equal(t, "Failed to load data", s.Err())
	assert.Len(t, s.Items(), 1, "failed fetch keeps the old list")

	api.err = nil
	require.NoError(t, s.Fetch(ctx))
	assert.Empty(t, s.Err(), "next action clears the message")
}

func TestMessagesFor(t *testing.T) {
	assert.Equal(t, "获取数据失败", MessagesFor("zh").Fetch)
	assert.Equal(t, "获取数据失败", MessagesFor("zh-CN").Fetch)
	assert.Equal(t, "Failed to load data", MessagesFor("fr").Fetch)
	assert.Equal(t, "Failed to load data", MessagesFor("").Fetch)
}

func TestReset(t *testing.T) {
	s, api := fetched(t, crop(1, entities.CropGrowing, 3))
	api.err = errors.New("boom")
	require.Error(t, s.Fetch(context.Background()))

	s.Reset()
	snap := s.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.Total)
	assert.Empty(t, snap.Err)
	assert.Equal(t, DefaultCropParams(), s.Params(), "params survive reset")
}

func TestSetParamsMerges(t *testing.T) {
	api := &fakeCrops{}
	s := NewCropStore(api, MessagesFor("en"))

	status := "harvested"
	skip := 40
	s.SetParams(CropParamsPatch{Status: &status, Skip: &skip})
	require.NoError(t, s.Fetch(context.Background()))

	want := DefaultCropParams()
	want.Status = "harvested"
	want.Skip = 40
	assert.Equal(t, want, api.lastList)
}

func TestLoadingDuringFetch(t *testing.T) {
	api := &fakeCrops{block: make(chan struct{})}
	s := NewCropStore(api, MessagesFor("en"))

	started := make(chan struct{})
	var once sync.Once
	unwatch := s.Watch(func() { once.Do(func() { close(started) }) })
	defer unwatch()

	done := make(chan error)
	go func() { done <- s.Fetch(context.Background()) }()
	<-started
	assert.True(t, s.Loading())
	close(api.block)
	require.NoError(t, <-done)
	assert.False(t, s.Loading())
}

func TestWatchAndUnwatch(t *testing.T) {
	s := NewCropStore(&fakeCrops{}, MessagesFor("en"))
	var calls int
	unwatch := s.Watch(func() { calls++ })

	require.NoError(t, s.Fetch(context.Background()))
	assert.Equal(t, 2, calls, "begin and end")

	unwatch()
	s.Reset()
	assert.Equal(t, 2, calls)
}

type fakeStats struct {
	err  error
	year int
}

func (f *fakeStats) Overview(context.Context) (*schema.OverviewStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &schema.OverviewStats{TotalCrops: 5}, nil
}

func (f *fakeStats) Charts(context.Context) (*schema.ChartDataResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &schema.ChartDataResponse{CropStatusPie: schema.ChartData{Type: "pie"}}, nil
}

func (f *fakeStats) Calendar(_ context.Context, year int) (*schema.CalendarData, error) {
	f.year = year
	if f.err != nil {
		return nil, f.err
	}
	return &schema.CalendarData{Events: []schema.CalendarEvent{{Date: "2024-04-15"}}}, nil
}

func TestStatisticsStore(t *testing.T) {
	api := &fakeStats{}
	s := NewStatisticsStore(api, MessagesFor("zh"))
	ctx := context.Background()

	assert.Nil(t, s.Overview())
	require.NoError(t, s.FetchOverview(ctx))
	require.NoError(t, s.FetchChartData(ctx))
	require.NoError(t, s.FetchCalendar(ctx, 2024))
	assert.EqualValues(t, 5, s.Overview().TotalCrops)
	assert.Equal(t, "pie", s.ChartData().CropStatusPie.Type)
	assert.Len(t, s.Calendar().Events, 1)
	assert.Equal(t, 2024, api.year)

	api.err = errors.New("timeout")
	require.Error(t, s.FetchChartData(ctx))
	assert.Equal(t, "获取图表数据失败", s.Err())
	assert.NotNil(t, s.ChartData(), "failed fetch keeps the previous data")

	s.Reset()
	assert.Nil(t, s.Overview())
	assert.Nil(t, s.ChartData())
	assert.Nil(t, s.Calendar())
	assert.Empty(t, s.Err())
}
