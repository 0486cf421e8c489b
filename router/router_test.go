package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dalu/config"
	"dalu/database"
	"dalu/entities"
	"dalu/pkg/schema"
)

func testConfig() config.ServerConfig {
	return config.ServerConfig{
		APIPrefix:   "/api/v1",
		CORSOrigins: []string{"http://localhost:5173"},
		LogLevel:    "info",
	}
}

func newTestAPI(t *testing.T, cfg config.ServerConfig, seed bool) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db, zap.NewNop()))
	if seed {
		require.NoError(t, database.SeedAll(db, zap.NewNop()))
	}
	return Build(db, cfg, zap.NewNop()), db
}

func call(t *testing.T, e *echo.Echo, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// callRaw sends body as is, for payloads that are not valid JSON.
func callRaw(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["detail"]
}

func TestCropLifecycle(t *testing.T) {
	e, db := newTestAPI(t, testConfig(), false)

	rec := call(t, e, http.MethodPost, "/api/v1/crops", map[string]any{
		"name": "Rice", "variety": "Shanyou 63", "area": 12.5, "plant_date": "2024-04-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[entities.Crop](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, entities.UnitKG, created.Unit)
	assert.Equal(t, entities.CropGrowing, created.Status)
	assert.Equal(t, "2024-04-15", created.PlantDate.String())

	rec = call(t, e, http.MethodGet, "/api/v1/crops", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[schema.ListResponse[entities.Crop]](t, rec)
	assert.EqualValues(t, 1, list.Total)
	assert.Equal(t, schema.DefaultLimit, list.Limit)
	require.Len(t, list.Items, 1)

	rec = call(t, e, http.MethodPut, "/api/v1/crops/1", map[string]any{"name": "Late rice"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Late rice", decode[entities.Crop](t, rec).Name)

	rec = call(t, e, http.MethodPatch, "/api/v1/crops/1/harvest", map[string]any{
		"actual_harvest_date": "2024-09-18", "yield_quantity": 9300, "notes": "good year",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	harvested := decode[entities.Crop](t, rec)
	assert.Equal(t, entities.CropHarvested, harvested.Status)
	assert.Equal(t, 9300.0, harvested.TotalYield)
	require.NotNil(t, harvested.ActualHarvestDate)
	assert.Equal(t, "2024-09-18", harvested.ActualHarvestDate.String())
	require.NotNil(t, harvested.Notes)
	assert.Equal(t, "good year", *harvested.Notes)

	var records int64
	require.NoError(t, db.Model(&entities.YieldRecord{}).Where("crop_id = ?", 1).Count(&records).Error)
	assert.EqualValues(t, 1, records)

	rec = call(t, e, http.MethodDelete, "/api/v1/crops/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NoError(t, db.Model(&entities.YieldRecord{}).Count(&records).Error)
	assert.Zero(t, records)

	rec = call(t, e, http.MethodGet, "/api/v1/crops/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "crop not found", detail(t, rec))

	rec = call(t, e, http.MethodDelete, "/api/v1/crops/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationErrors(t *testing.T) {
	e, _ := newTestAPI(t, testConfig(), false)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"zero area", http.MethodPost, "/api/v1/crops", map[string]any{"name": "Rice", "variety": "x", "area": 0, "plant_date": "2024-04-15"}},
		{"missing plant date", http.MethodPost, "/api/v1/crops", map[string]any{"name": "Rice", "variety": "x", "area": 1}},
		{"bad date", http.MethodPost, "/api/v1/crops", map[string]any{"name": "Rice", "variety": "x", "area": 1, "plant_date": "15/04/2024"}},
		{"negative quantity", http.MethodPost, "/api/v1/animals", map[string]any{"name": "Cow", "variety": "x", "quantity": -1, "acquire_date": "2024-01-01"}},
		{"unknown purpose", http.MethodPost, "/api/v1/flowers", map[string]any{"name": "Rose", "variety": "x", "plant_date": "2024-01-01", "purpose": "decor"}},
		{"limit too large", http.MethodGet, "/api/v1/crops?limit=101", nil},
		{"negative skip", http.MethodGet, "/api/v1/animals?skip=-1", nil},
		{"bad id", http.MethodGet, "/api/v1/flowers/abc", nil},
		{"bad year", http.MethodGet, "/api/v1/statistics/calendar?year=twenty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(t, e, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			assert.NotEmpty(t, detail(t, rec))
		})
	}
}

func TestRejectedRequestsStopEarly(t *testing.T) {
	e, db := newTestAPI(t, testConfig(), true)

	var before entities.Crop
	require.NoError(t, db.First(&before, 1).Error)

	for _, path := range []string{"/api/v1/crops/1", "/api/v1/animals/1", "/api/v1/flowers/1"} {
		rec := callRaw(t, e, http.MethodPut, path, `{bad`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, path)
		assert.Contains(t, detail(t, rec), "invalid json", path)
	}
	var after entities.Crop
	require.NoError(t, db.First(&after, 1).Error)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	assert.Equal(t, before.Name, after.Name)

	rec := callRaw(t, e, http.MethodPatch, "/api/v1/crops/1/harvest", `{"yield_quantity":`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, detail(t, rec), "invalid json")

	rec = callRaw(t, e, http.MethodPost, "/api/v1/crops", `[1, 2]`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, detail(t, rec), "invalid json")
	var n int64
	require.NoError(t, db.Model(&entities.Crop{}).Count(&n).Error)
	assert.EqualValues(t, 5, n)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := call(t, e, method, "/api/v1/crops/abc", map[string]any{"name": "x"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, method)
		assert.Equal(t, "invalid id", detail(t, rec), method)
	}
	rec = call(t, e, http.MethodDelete, "/api/v1/animals/0", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid id", detail(t, rec))
	require.NoError(t, db.Model(&entities.Animal{}).Count(&n).Error)
	assert.EqualValues(t, 5, n)
}

func TestUnknownRouteDetail(t *testing.T) {
	e, _ := newTestAPI(t, testConfig(), false)

	rec := call(t, e, http.MethodGet, "/api/v1/tractors", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", detail(t, rec))
}

func TestUpdateClearsNullableField(t *testing.T) {
	e, _ := newTestAPI(t, testConfig(), false)

	rec := call(t, e, http.MethodPost, "/api/v1/crops", map[string]any{
		"name": "Rice", "variety": "x", "area": 2, "plant_date": "2024-04-15",
		"expected_harvest_date": "2024-09-01", "notes": "north",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := itoa(decode[entities.Crop](t, rec).ID)

	rec = callRaw(t, e, http.MethodPut, "/api/v1/crops/"+id, `{"notes": null, "expected_harvest_date": null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[entities.Crop](t, rec)
	assert.Nil(t, got.Notes)
	assert.Nil(t, got.ExpectedHarvestDate)
	assert.Equal(t, "Rice", got.Name)
}

func TestCropListFiltersAndSorts(t *testing.T) {
	e, _ := newTestAPI(t, testConfig(), true)

	list := decode[schema.ListResponse[entities.Crop]](t, call(t, e, http.MethodGet, "/api/v1/crops?status=harvested", nil))
	assert.EqualValues(t, 2, list.Total)
	for _, c := range list.Items {
		assert.Equal(t, entities.CropHarvested, c.Status)
	}

	// unknown status is ignored
	list = decode[schema.ListResponse[entities.Crop]](t, call(t, e, http.MethodGet, "/api/v1/crops?status=rotten", nil))
	assert.EqualValues(t, 5, list.Total)

	// default order is plant_date desc
	require.Len(t, list.Items, 5)
	assert.Equal(t, "Soybean", list.Items[0].Name)
	assert.Equal(t, "Wheat", list.Items[4].Name)

	list = decode[schema.ListResponse[entities.Crop]](t, call(t, e, http.MethodGet, "/api/v1/crops?sort_by=area&sort_order=asc&limit=2&skip=1", nil))
	assert.EqualValues(t, 5, list.Total)
	assert.Equal(t, 1, list.Skip)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Soybean", list.Items[0].Name)
	assert.Equal(t, "Rice", list.Items[1].Name)
}

func TestAnimalAndFlowerCRUD(t *testing.T) {
	e, _ := newTestAPI(t, testConfig(), true)

	animals := decode[schema.ListResponse[entities.Animal]](t, call(t, e, http.MethodGet, "/api/v1/animals", nil))
	assert.EqualValues(t, 5, animals.Total)
	assert.Equal(t, "Honey bee", animals.Items[0].Name) // newest acquire_date first

	rec := call(t, e, http.MethodPost, "/api/v1/animals", map[string]any{
		"name": "Goat", "variety": "Saanen", "quantity": 4, "acquire_date": "2024-07-01", "product_type": "milk",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	goat := decode[entities.Animal](t, rec)

	rec = call(t, e, http.MethodPut, "/api/v1/animals/"+itoa(goat.ID), map[string]any{"quantity": 6})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 6, decode[entities.Animal](t, rec).Quantity)

	rec = call(t, e, http.MethodDelete, "/api/v1/animals/"+itoa(goat.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = call(t, e, http.MethodGet, "/api/v1/animals/"+itoa(goat.ID), nil)
	assert.Equal(t, "animal not found", detail(t, rec))

	rec = call(t, e, http.MethodPost, "/api/v1/flowers", map[string]any{
		"name": "Tulip", "variety": "Darwin", "quantity": 40, "plant_date": "2024-02-01",
		"colors": []string{"red", "orange"}, "bloom_season": "spring",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tulip := decode[entities.Flower](t, rec)

	rec = call(t, e, http.MethodGet, "/api/v1/flowers/"+itoa(tulip.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"red", "orange"}, decode[entities.Flower](t, rec).Colors)

	flowers := decode[schema.ListResponse[entities.Flower]](t, call(t, e, http.MethodGet, "/api/v1/flowers?limit=1", nil))
	assert.EqualValues(t, 6, flowers.Total)
	require.Len(t, flowers.Items, 1)
	assert.Equal(t, "Sunflower", flowers.Items[0].Name)
}

func TestStatistics(t *testing.T) {
	e, _ := newTestAPI(t, testConfig(), true)

	o := decode[schema.OverviewStats](t, call(t, e, http.MethodGet, "/api/v1/statistics/overview", nil))
	assert.EqualValues(t, 5, o.TotalCrops)
	assert.EqualValues(t, 2, o.GrowingCrops)
	assert.EqualValues(t, 2, o.HarvestedCrops)
	assert.InDelta(t, 22500, o.TotalCropYield, 0.001)
	assert.EqualValues(t, 5, o.TotalAnimalVarieties)
	assert.EqualValues(t, 277, o.TotalAnimals)
	assert.InDelta(t, 417.5, o.EstimatedDailyYield, 0.001)
	assert.EqualValues(t, 5, o.TotalFlowerVarieties)
	assert.EqualValues(t, 2080, o.TotalFlowers)

	cs := decode[schema.CropStats](t, call(t, e, http.MethodGet, "/api/v1/statistics/crops", nil))
	assert.Equal(t, map[string]int64{"growing": 2, "harvested": 2, "failed": 1}, cs.ByStatus)
	assert.InDelta(t, 9300, cs.ByVariety["Shanyou 63"], 0.001)

	as := decode[schema.AnimalStats](t, call(t, e, http.MethodGet, "/api/v1/statistics/animals", nil))
	assert.EqualValues(t, 150, as.ByProductType["egg"])
	assert.EqualValues(t, 12, as.ByVariety["Holstein"])

	fs := decode[schema.FlowerStats](t, call(t, e, http.MethodGet, "/api/v1/statistics/flowers", nil))
	assert.EqualValues(t, 1500, fs.BySeason["summer"])
	assert.EqualValues(t, 500, fs.ByPurpose["essential_oil"])

	charts := decode[schema.ChartDataResponse](t, call(t, e, http.MethodGet, "/api/v1/statistics/charts", nil))
	assert.Equal(t, "pie", charts.CropStatusPie.Type)
	assert.Equal(t, []string{"failed", "growing", "harvested"}, charts.CropStatusPie.Labels)
	require.Len(t, charts.CropStatusPie.Datasets, 1)
	assert.Equal(t, []any{1.0, 2.0, 2.0}, charts.CropStatusPie.Datasets[0]["data"])
	assert.Len(t, charts.FlowerBySeason.Labels, 4)

	cal := decode[schema.CalendarData](t, call(t, e, http.MethodGet, "/api/v1/statistics/calendar?year=2024", nil))
	assert.Len(t, cal.Events, 13)
	for i, ev := range cal.Events {
		assert.Equal(t, "2024", ev.Date[:4])
		if i > 0 {
			assert.LessOrEqual(t, cal.Events[i-1].Date, ev.Date)
		}
	}
	cal = decode[schema.CalendarData](t, call(t, e, http.MethodGet, "/api/v1/statistics/calendar?year=2023", nil))
	assert.Len(t, cal.Events, 4)
}

func TestBearerAuth(t *testing.T) {
	cfg := testConfig()
	cfg.RequireAuth = true
	cfg.APIToken = "s3cret"
	e, _ := newTestAPI(t, cfg, false)

	rec := call(t, e, http.MethodGet, "/api/v1/crops", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "not authenticated", detail(t, rec))

	rec = call(t, e, http.MethodGet, "/api/v1/crops", nil, echo.HeaderAuthorization, "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, e, http.MethodGet, "/api/v1/crops", nil, echo.HeaderAuthorization, "Bearer s3cret")
	assert.Equal(t, http.StatusOK, rec.Code)

	// outside the API prefix
	rec = call(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, e, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }
