package entities

import "time"

type CropStatus string

const (
	CropGrowing   CropStatus = "growing"
	CropHarvested CropStatus = "harvested"
	CropFailed    CropStatus = "failed"
)

func (s CropStatus) Valid() bool {
	switch s {
	case CropGrowing, CropHarvested, CropFailed:
		return true
	}
	return false
}

type CropUnit string

const (
	UnitTon  CropUnit = "ton"
	UnitKG   CropUnit = "kg"
	UnitGram CropUnit = "gram"
)

func (u CropUnit) Valid() bool {
	switch u {
	case UnitTon, UnitKG, UnitGram:
		return true
	}
	return false
}

// Crop is a planted grain field. Area is in mu.
type Crop struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Name                string     `gorm:"size:100;not null" json:"name"`
	Variety             string     `gorm:"size:100;not null;index" json:"variety"`
	Area                float64    `gorm:"not null" json:"area"`
	PlantDate           Date       `gorm:"not null;index" json:"plant_date"`
	ExpectedHarvestDate *Date      `json:"expected_harvest_date"`
	ActualHarvestDate   *Date      `json:"actual_harvest_date"`
	TotalYield          float64    `gorm:"not null;default:0" json:"total_yield"`
	Unit                CropUnit   `gorm:"size:10;not null;default:kg" json:"unit"`
	Status              CropStatus `gorm:"size:20;not null;default:growing;index" json:"status"`
	Notes               *string    `gorm:"size:500" json:"notes"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (c Crop) Key() uint { return c.ID }

// YieldRecord logs one harvest of a crop. Not exposed over the API.
type YieldRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CropID        uint      `gorm:"not null;index" json:"crop_id"`
	RecordDate    Date      `gorm:"not null" json:"record_date"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	Unit          *string   `gorm:"size:20" json:"unit"`
	AreaHarvested *float64  `json:"area_harvested"`
	Notes         *string   `gorm:"size:500" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
