package entities

import "time"

type ProductType string

const (
	ProductMilk  ProductType = "milk"
	ProductEgg   ProductType = "egg"
	ProductWool  ProductType = "wool"
	ProductMeat  ProductType = "meat"
	ProductHoney ProductType = "honey"
	ProductOther ProductType = "other"
)

func (p ProductType) Valid() bool {
	switch p {
	case ProductMilk, ProductEgg, ProductWool, ProductMeat, ProductHoney, ProductOther:
		return true
	}
	return false
}

type Animal struct {
	ID                  uint         `gorm:"primaryKey" json:"id"`
	Name                string       `gorm:"size:100;not null" json:"name"`
	Variety             string       `gorm:"size:100;not null;index" json:"variety"`
	Quantity            int          `gorm:"not null;default:0" json:"quantity"`
	AcquireDate         Date         `gorm:"not null;index" json:"acquire_date"`
	ProductType         *ProductType `gorm:"size:20" json:"product_type"`
	EstimatedDailyYield *float64     `json:"estimated_daily_yield"`
	YieldUnit           *string      `gorm:"size:20" json:"yield_unit"`
	Notes               *string      `gorm:"size:500" json:"notes"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

func (a Animal) Key() uint { return a.ID }
