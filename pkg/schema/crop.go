package schema

import "dalu/entities"

type CropCreate struct {
	Name                string            `json:"name"`
	Variety             string            `json:"variety"`
	Area                float64           `json:"area"`
	PlantDate           entities.Date     `json:"plant_date"`
	ExpectedHarvestDate *entities.Date    `json:"expected_harvest_date,omitempty"`
	Unit                entities.CropUnit `json:"unit,omitempty"`
	Notes               *string           `json:"notes,omitempty"`
}

func (in CropCreate) Validate() error {
	if err := checkText("name", in.Name, maxNameLen); err != nil {
		return err
	}
	if err := checkText("variety", in.Variety, maxNameLen); err != nil {
		return err
	}
	if in.Area <= 0 {
		return invalid("area", "must be > 0")
	}
	if in.PlantDate.IsZero() {
		return invalid("plant_date", "is required")
	}
	if in.Unit != "" && !in.Unit.Valid() {
		return invalid("unit", "unknown unit %q", in.Unit)
	}
	return checkOptText("notes", in.Notes, maxNotesLen)
}

// Entity builds a new growing crop with no yield yet.
func (in CropCreate) Entity() entities.Crop {
	unit := in.Unit
	if unit == "" {
		unit = entities.UnitKG
	}
	return entities.Crop{
		Name:                in.Name,
		Variety:             in.Variety,
		Area:                in.Area,
		PlantDate:           in.PlantDate,
		ExpectedHarvestDate: in.ExpectedHarvestDate,
		Unit:                unit,
		Status:              entities.CropGrowing,
		Notes:               in.Notes,
	}
}

// CropUpdate is a partial update: only non-nil fields are written. The
// Nullable fields can also be cleared with an explicit null.
type CropUpdate struct {
	Name                *string                 `json:"name,omitempty"`
	Variety             *string                 `json:"variety,omitempty"`
	Area                *float64                `json:"area,omitempty"`
	PlantDate           *entities.Date          `json:"plant_date,omitempty"`
	ExpectedHarvestDate Nullable[entities.Date] `json:"expected_harvest_date,omitzero"`
	ActualHarvestDate   Nullable[entities.Date] `json:"actual_harvest_date,omitzero"`
	TotalYield          *float64                `json:"total_yield,omitempty"`
	Unit                *entities.CropUnit      `json:"unit,omitempty"`
	Status              *entities.CropStatus    `json:"status,omitempty"`
	Notes               Nullable[string]        `json:"notes,omitzero"`
}

func (in CropUpdate) Validate() error {
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
	if in.Area != nil && *in.Area <= 0 {
		return invalid("area", "must be > 0")
	}
	if err := checkOptNonNeg("total_yield", in.TotalYield); err != nil {
		return err
	}
	if in.Unit != nil && !in.Unit.Valid() {
		return invalid("unit", "unknown unit %q", *in.Unit)
	}
	if in.Status != nil && !in.Status.Valid() {
		return invalid("status", "unknown status %q", *in.Status)
	}
	return checkOptText("notes", in.Notes.Ptr(), maxNotesLen)
}

func (in CropUpdate) Apply(c *entities.Crop) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Variety != nil {
		c.Variety = *in.Variety
	}
	if in.Area != nil {
		c.Area = *in.Area
	}
	if in.PlantDate != nil {
		c.PlantDate = *in.PlantDate
	}
	in.ExpectedHarvestDate.apply(&c.ExpectedHarvestDate)
	in.ActualHarvestDate.apply(&c.ActualHarvestDate)
	if in.TotalYield != nil {
		c.TotalYield = *in.TotalYield
	}
	if in.Unit != nil {
		c.Unit = *in.Unit
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	in.Notes.apply(&c.Notes)
}

// CropHarvest marks a crop harvested with its final yield.
type CropHarvest struct {
	ActualHarvestDate entities.Date      `json:"actual_harvest_date"`
	YieldQuantity     float64            `json:"yield_quantity"`
	YieldUnit         *entities.CropUnit `json:"yield_unit,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
}

func (in CropHarvest) Validate() error {
	if in.ActualHarvestDate.IsZero() {
		return invalid("actual_harvest_date", "is required")
	}
	if in.YieldQuantity <= 0 {
		return invalid("yield_quantity", "must be > 0")
	}
	if in.YieldUnit != nil && !in.YieldUnit.Valid() {
		return invalid("yield_unit", "unknown unit %q", *in.YieldUnit)
	}
	return checkOptText("notes", in.Notes, maxNotesLen)
}

// Apply sets the harvest fields on c and returns the yield record that
// documents this harvest.
func (in CropHarvest) Apply(c *entities.Crop) entities.YieldRecord {
	date := in.ActualHarvestDate
	c.ActualHarvestDate = &date
	c.TotalYield = in.YieldQuantity
	c.Status = entities.CropHarvested
	if in.YieldUnit != nil {
		c.Unit = *in.YieldUnit
	}
	if in.Notes != nil {
		c.Notes = in.Notes
	}
	unit := string(c.Unit)
	area := c.Area
	return entities.YieldRecord{
		CropID:        c.ID,
		RecordDate:    date,
		Quantity:      in.YieldQuantity,
		Unit:          &unit,
		AreaHarvested: &area,
		Notes:         in.Notes,
	}
}
