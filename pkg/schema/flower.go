package schema

import "dalu/entities"

type FlowerCreate struct {
	Name           string                  `json:"name"`
	Variety        string                  `json:"variety"`
	Quantity       int                     `json:"quantity"`
	PlantDate      entities.Date           `json:"plant_date"`
	BloomSeason    *entities.BloomSeason   `json:"bloom_season,omitempty"`
	Colors         []string                `json:"colors,omitempty"`
	Purpose        *entities.FlowerPurpose `json:"purpose,omitempty"`
	EstimatedYield *float64                `json:"estimated_yield,omitempty"`
	YieldUnit      *string                 `json:"yield_unit,omitempty"`
	Notes          *string                 `json:"notes,omitempty"`
}

func (in FlowerCreate) Validate() error {
	if err := checkText("name", in.Name, maxNameLen); err != nil {
		return err
	}
	if err := checkText("variety", in.Variety, maxNameLen); err != nil {
		return err
	}
	if in.Quantity < 0 {
		return invalid("quantity", "must be >= 0")
	}
	if in.PlantDate.IsZero() {
		return invalid("plant_date", "is required")
	}
	return validateFlowerOptionals(in.BloomSeason, in.Purpose, in.EstimatedYield, in.YieldUnit, in.Notes)
}

func validateFlowerOptionals(season *entities.BloomSeason, purpose *entities.FlowerPurpose, est *float64, unit, notes *string) error {
	if season != nil && !season.Valid() {
		return invalid("bloom_season", "unknown season %q", *season)
	}
	if purpose != nil && !purpose.Valid() {
		return invalid("purpose", "unknown purpose %q", *purpose)
	}
	if err := checkOptNonNeg("estimated_yield", est); err != nil {
		return err
	}
	if err := checkOptText("yield_unit", unit, maxUnitLen); err != nil {
		return err
	}
	return checkOptText("notes", notes, maxNotesLen)
}

func (in FlowerCreate) Entity() entities.Flower {
	return entities.Flower{
		Name:           in.Name,
		Variety:        in.Variety,
		Quantity:       in.Quantity,
		PlantDate:      in.PlantDate,
		BloomSeason:    in.BloomSeason,
		Colors:         in.Colors,
		Purpose:        in.Purpose,
		EstimatedYield: in.EstimatedYield,
		YieldUnit:      in.YieldUnit,
		Notes:          in.Notes,
	}
}

type FlowerUpdate struct {
	Name           *string                          `json:"name,omitempty"`
	Variety        *string                          `json:"variety,omitempty"`
	Quantity       *int                             `json:"quantity,omitempty"`
	PlantDate      *entities.Date                   `json:"plant_date,omitempty"`
	BloomSeason    Nullable[entities.BloomSeason]   `json:"bloom_season,omitzero"`
	Colors         Nullable[[]string]               `json:"colors,omitzero"`
	Purpose        Nullable[entities.FlowerPurpose] `json:"purpose,omitzero"`
	EstimatedYield Nullable[float64]                `json:"estimated_yield,omitzero"`
	YieldUnit      Nullable[string]                 `json:"yield_unit,omitzero"`
	Notes          Nullable[string]                 `json:"notes,omitzero"`
}

func (in FlowerUpdate) Validate() error {
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
	return validateFlowerOptionals(in.BloomSeason.Ptr(), in.Purpose.Ptr(), in.EstimatedYield.Ptr(), in.YieldUnit.Ptr(), in.Notes.Ptr())
}

func (in FlowerUpdate) Apply(f *entities.Flower) {
	if in.Name != nil {
		f.Name = *in.Name
	}
	if in.Variety != nil {
		f.Variety = *in.Variety
	}
	if in.Quantity != nil {
		f.Quantity = *in.Quantity
	}
	if in.PlantDate != nil {
		f.PlantDate = *in.PlantDate
	}
	in.BloomSeason.apply(&f.BloomSeason)
	if in.Colors.Set {
		f.Colors = in.Colors.Value
	}
	in.Purpose.apply(&f.Purpose)
	in.EstimatedYield.apply(&f.EstimatedYield)
	in.YieldUnit.apply(&f.YieldUnit)
	in.Notes.apply(&f.Notes)
}
