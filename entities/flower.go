package entities

import "time"

type FlowerPurpose string

const (
	PurposeOrnamental   FlowerPurpose = "ornamental"
	PurposeSale         FlowerPurpose = "sale"
	PurposeEssentialOil FlowerPurpose = "essential_oil"
	PurposeMedicinal    FlowerPurpose = "medicinal"
	PurposeOther        FlowerPurpose = "other"
)

func (p FlowerPurpose) Valid() bool {
	switch p {
	case PurposeOrnamental, PurposeSale, PurposeEssentialOil, PurposeMedicinal, PurposeOther:
		return true
	}
	return false
}

type BloomSeason string

const (
	SeasonSpring   BloomSeason = "spring"
	SeasonSummer   BloomSeason = "summer"
	SeasonAutumn   BloomSeason = "autumn"
	SeasonWinter   BloomSeason = "winter"
	SeasonAllYear  BloomSeason = "all_year"
	SeasonMultiple BloomSeason = "multiple"
)

func (s BloomSeason) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAllYear, SeasonMultiple:
		return true
	}
	return false
}

type Flower struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Variety        string         `gorm:"size:100;not null;index" json:"variety"`
	Quantity       int            `gorm:"not null;default:0" json:"quantity"`
	PlantDate      Date           `gorm:"not null;index" json:"plant_date"`
	BloomSeason    *BloomSeason   `gorm:"size:20" json:"bloom_season"`
	Colors         []string       `gorm:"serializer:json" json:"colors"`
	Purpose        *FlowerPurpose `gorm:"size:20" json:"purpose"`
	EstimatedYield *float64       `json:"estimated_yield"`
	YieldUnit      *string        `gorm:"size:20" json:"yield_unit"`
	Notes          *string        `gorm:"size:500" json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (f Flower) Key() uint { return f.ID }
