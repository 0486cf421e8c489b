package schema

import "dalu/entities"

type AnimalCreate struct {
	Name                string                `json:"name"`
	Variety             string                `json:"variety"`
	Quantity            int                   `json:"quantity"`
	AcquireDate         entities.Date         `json:"acquire_date"`
	ProductType         *entities.ProductType `json:"product_type,omitempty"`
	EstimatedDailyYield *float64              `json:"estimated_daily_yield,omitempty"`
	YieldUnit           *string               `json:"yield_unit,omitempty"`
	Notes               *string               `json:"notes,omitempty"`
}

func (in AnimalCreate) Validate() error {
	if err := checkText("name", in.Name, maxNameLen); err != nil {
		return err
	}
	if err := checkText("variety", in.Variety, maxNameLen); err != nil {
		return err
	}
	if in.Quantity < 0 {
		return invalid("quantity", "must be >= 0")
	}
	if in.AcquireDate.IsZero() {
		return invalid("acquire_date", "is required")
	}
	if in.ProductType != nil && !in.ProductType.Valid() {
		return invalid("product_type", "unknown product type %q", *in.ProductType)
	}
	if err := checkOptNonNeg("estimated_daily_yield", in.EstimatedDailyYield); err != nil {
		return err
	}
	if err := checkOptText("yield_unit", in.YieldUnit, maxUnitLen); err != nil {
		return err
	}
	return checkOptText("notes", in.Notes, maxNotesLen)
}

func (in AnimalCreate) Entity() entities.Animal {
	return entities.Animal{
		Name:                in.Name,
		Variety:             in.Variety,
		Quantity:            in.Quantity,
		AcquireDate:         in.AcquireDate,
		ProductType:         in.ProductType,
		EstimatedDailyYield: in.EstimatedDailyYield,
		YieldUnit:           in.YieldUnit,
		Notes:               in.Notes,
	}
}

type AnimalUpdate struct {
	Name                *string                        `json:"name,omitempty"`
	Variety             *string                        `json:"variety,omitempty"`
	Quantity            *int                           `json:"quantity,omitempty"`
	AcquireDate         *entities.Date                 `json:"acquire_date,omitempty"`
	ProductType         Nullable[entities.ProductType] `json:"product_type,omitzero"`
	EstimatedDailyYield Nullable[float64]              `json:"estimated_daily_yield,omitzero"`
	YieldUnit           Nullable[string]               `json:"yield_unit,omitzero"`
	Notes               Nullable[string]               `json:"notes,omitzero"`
}

func (in AnimalUpdate) Validate() error {
	if in.Name != nil {
		if err := checkText("name", *in.Name, maxNameLen); err != nil {
			return err
		}
	}
	if in.Variety != nil {
		if err := checkText("variety", *in.Variety, maxNameLen); err != nil {
			return err
		}
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return invalid("quantity", "must be >= 0")
	}
	if p := in.ProductType.Ptr(); p != nil && !p.Valid() {
		return invalid("product_type", "unknown product type %q", *p)
	}
	if err := checkOptNonNeg("estimated_daily_yield", in.EstimatedDailyYield.Ptr()); err != nil {
		return err
	}
	if err := checkOptText("yield_unit", in.YieldUnit.Ptr(), maxUnitLen); err != nil {
		return err
	}
	return checkOptText("notes", in.Notes.Ptr(), maxNotesLen)
}

func (in AnimalUpdate) Apply(a *entities.Animal) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Variety != nil {
		a.Variety = *in.Variety
	}
	if in.Quantity != nil {
		a.Quantity = *in.Quantity
	}
	if in.AcquireDate != nil {
		a.AcquireDate = *in.AcquireDate
	}
	in.ProductType.apply(&a.ProductType)
	in.EstimatedDailyYield.apply(&a.EstimatedDailyYield)
	in.YieldUnit.apply(&a.YieldUnit)
	in.Notes.apply(&a.Notes)
}
