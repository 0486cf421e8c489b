package schema

// OverviewStats is the dashboard headline row.
type OverviewStats struct {
	TotalCrops     int64   `json:"total_crops"`
	GrowingCrops   int64   `json:"growing_crops"`
	HarvestedCrops int64   `json:"harvested_crops"`
	TotalCropYield float64 `json:"total_crop_yield"`

	TotalAnimalVarieties int64   `json:"total_animal_varieties"`
	TotalAnimals         int64   `json:"total_animals"`
	EstimatedDailyYield  float64 `json:"estimated_daily_yield"`

	TotalFlowerVarieties int64 `json:"total_flower_varieties"`
	TotalFlowers         int64 `json:"total_flowers"`
}

type CropStats struct {
	ByVariety map[string]float64 `json:"by_variety"` // variety -> yield
	ByStatus  map[string]int64   `json:"by_status"`
}

type AnimalStats struct {
	ByProductType map[string]int64 `json:"by_product_type"`
	ByVariety     map[string]int64 `json:"by_variety"`
}

type FlowerStats struct {
	BySeason  map[string]int64 `json:"by_season"`
	ByPurpose map[string]int64 `json:"by_purpose"`
}

// ChartData is a chart-library agnostic series: Datasets[i]["data"] lines
// up with Labels.
type ChartData struct {
	Title    string           `json:"title"`
	Type     string           `json:"type"` // bar, pie, line
	Labels   []string         `json:"labels"`
	Datasets []map[string]any `json:"datasets"`
}

type ChartDataResponse struct {
	CropYieldByVariety ChartData `json:"crop_yield_by_variety"`
	CropStatusPie      ChartData `json:"crop_status_pie"`
	AnimalByProduct    ChartData `json:"animal_by_product"`
	FlowerBySeason     ChartData `json:"flower_by_season"`
}

const (
	EventPlant   = "plant"
	EventHarvest = "harvest"

	CategoryCrop   = "crop"
	CategoryFlower = "flower"
)

type CalendarEvent struct {
	Date     string `json:"date"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CalendarData struct {
	Events []CalendarEvent `json:"events"`
}
