package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dalu/entities"
)

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }

func date(y, m, d int) entities.Date {
	return entities.NewDate(y, time.Month(m), d)
}

func cropSeeds() []entities.Crop {
	return []entities.Crop{
		{Name: "Rice", Variety: "Shanyou 63", Area: 15.5, PlantDate: date(2024, 4, 15),
			ExpectedHarvestDate: entities.DatePtr(date(2024, 9, 20)), ActualHarvestDate: entities.DatePtr(date(2024, 9, 18)),
			TotalYield: 9300, Unit: entities.UnitKG, Status: entities.CropHarvested, Notes: str("Mild season, steady yield")},
		{Name: "Wheat", Variety: "Jimai 22", Area: 22, PlantDate: date(2023, 10, 10),
			ExpectedHarvestDate: entities.DatePtr(date(2024, 6, 5)), ActualHarvestDate: entities.DatePtr(date(2024, 6, 8)),
			TotalYield: 13200, Unit: entities.UnitKG, Status: entities.CropHarvested, Notes: str("Light drought, little impact")},
		{Name: "Corn", Variety: "Zhengdan 958", Area: 18, PlantDate: date(2024, 5, 20),
			ExpectedHarvestDate: entities.DatePtr(date(2024, 9, 30)),
			Unit: entities.UnitKG, Status: entities.CropGrowing, Notes: str("Growing well, good harvest expected")},
		{Name: "Soybean", Variety: "Heinong 84", Area: 8.5, PlantDate: date(2024, 6, 5),
			ExpectedHarvestDate: entities.DatePtr(date(2024, 10, 15)),
			Unit: entities.UnitKG, Status: entities.CropGrowing, Notes: str("Intercropped with corn")},
		{Name: "Sweet potato", Variety: "Xushu 32", Area: 5, PlantDate: date(2024, 3, 20),
			ExpectedHarvestDate: entities.DatePtr(date(2024, 9, 1)),
			Unit: entities.UnitKG, Status: entities.CropFailed, Notes: str("Root rot after weeks of rain")},
	}
}

func animalSeeds() []entities.Animal {
	p := func(t entities.ProductType) *entities.ProductType { return &t }
	return []entities.Animal{
		{Name: "Dairy cow", Variety: "Holstein", Quantity: 12, AcquireDate: date(2023, 3, 15),
			ProductType: p(entities.ProductMilk), EstimatedDailyYield: num(280), YieldUnit: str("L"), Notes: str("Healthy herd")},
		{Name: "Laying hen", Variety: "Hy-Line Brown", Quantity: 150, AcquireDate: date(2024, 1, 10),
			ProductType: p(entities.ProductEgg), EstimatedDailyYield: num(135), YieldUnit: str("eggs"), Notes: str("Lay rate steady around 90%")},
		{Name: "Sheep", Variety: "Merino", Quantity: 25, AcquireDate: date(2023, 6, 20),
			ProductType: p(entities.ProductWool), EstimatedDailyYield: num(0), YieldUnit: str("kg"), Notes: str("Shorn twice a year")},
		{Name: "Honey bee", Variety: "Italian", Quantity: 30, AcquireDate: date(2024, 4, 1),
			ProductType: p(entities.ProductHoney), EstimatedDailyYield: num(2.5), YieldUnit: str("kg"), Notes: str("Plenty of spring nectar")},
		{Name: "Meat rabbit", Variety: "New Zealand White", Quantity: 60, AcquireDate: date(2024, 2, 15),
			ProductType: p(entities.ProductMeat), EstimatedDailyYield: num(0), YieldUnit: str("kg"), Notes: str("Ready for market in three months")},
	}
}

func flowerSeeds() []entities.Flower {
	s := func(v entities.BloomSeason) *entities.BloomSeason { return &v }
	p := func(v entities.FlowerPurpose) *entities.FlowerPurpose { return &v }
	return []entities.Flower{
		{Name: "Rose", Variety: "Peace", Quantity: 200, PlantDate: date(2023, 11, 5), BloomSeason: s(entities.SeasonMultiple),
			Colors: []string{"pink", "white", "yellow"}, Purpose: p(entities.PurposeSale), EstimatedYield: num(1500), YieldUnit: str("stems/yr"), Notes: str("Greenhouse grown")},
		{Name: "Lavender", Variety: "True lavender", Quantity: 500, PlantDate: date(2023, 9, 15), BloomSeason: s(entities.SeasonSummer),
			Colors: []string{"purple"}, Purpose: p(entities.PurposeEssentialOil), EstimatedYield: num(50), YieldUnit: str("kg"), Notes: str("Distilled for oil")},
		{Name: "Peony", Variety: "Luoyang Red", Quantity: 80, PlantDate: date(2023, 10, 20), BloomSeason: s(entities.SeasonSpring),
			Colors: []string{"red", "crimson"}, Purpose: p(entities.PurposeOrnamental), EstimatedYield: num(0), YieldUnit: str("stems"), Notes: str("Short bloom, ornamental")},
		{Name: "Honeysuckle", Variety: "Damao", Quantity: 300, PlantDate: date(2024, 3, 10), BloomSeason: s(entities.SeasonAllYear),
			Colors: []string{"white", "yellow"}, Purpose: p(entities.PurposeMedicinal), EstimatedYield: num(80), YieldUnit: str("kg/yr"), Notes: str("High medicinal value")},
		{Name: "Sunflower", Variety: "Confection", Quantity: 1000, PlantDate: date(2024, 4, 20), BloomSeason: s(entities.SeasonSummer),
			Colors: []string{"yellow"}, Purpose: p(entities.PurposeOther), EstimatedYield: num(150), YieldUnit: str("kg"), Notes: str("Harvested for seeds")},
	}
}

// yieldSeeds returns two harvest batches for each of the first two
// harvested crops.
func yieldSeeds(first, second uint) []entities.YieldRecord {
	return []entities.YieldRecord{
		{CropID: first, RecordDate: date(2024, 9, 18), Quantity: 4800, Unit: str("kg"), AreaHarvested: num(8), Notes: str("First cut")},
		{CropID: first, RecordDate: date(2024, 9, 18), Quantity: 4500, Unit: str("kg"), AreaHarvested: num(7.5), Notes: str("Second cut")},
		{CropID: second, RecordDate: date(2024, 6, 5), Quantity: 6800, Unit: str("kg"), AreaHarvested: num(12), Notes: str("Main plot")},
		{CropID: second, RecordDate: date(2024, 6, 8), Quantity: 6400, Unit: str("kg"), AreaHarvested: num(10), Notes: str("Remaining plots")},
	}
}

// seedTable inserts rows into an empty table and leaves populated tables
// alone.
func seedTable[T any](db *gorm.DB, log *zap.Logger, name string, rows []T) error {
	var n int64
	if err := db.Model(new(T)).Count(&n).Error; err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	if n > 0 {
		log.Info("seed skipped, table not empty", zap.String("table", name), zap.Int64("rows", n))
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	log.Info("seeded", zap.String("table", name), zap.Int("rows", len(rows)))
	return nil
}

// SeedAll loads the demo farm. It is idempotent per table.
func SeedAll(db *gorm.DB, log *zap.Logger) error {
	if err := seedTable(db, log, "crops", cropSeeds()); err != nil {
		return err
	}
	if err := seedTable(db, log, "animals", animalSeeds()); err != nil {
		return err
	}
	if err := seedTable(db, log, "flowers", flowerSeeds()); err != nil {
		return err
	}

	var harvested []entities.Crop
	if err := db.Where("status = ?", entities.CropHarvested).Order("id").Limit(2).Find(&harvested).Error; err != nil {
		return fmt.Errorf("find harvested crops: %w", err)
	}
	if len(harvested) < 2 {
		log.Info("no harvested crops, yield records skipped")
		return nil
	}
	return seedTable(db, log, "yield_records", yieldSeeds(harvested[0].ID, harvested[1].ID))
}

// ClearSeedData deletes every row from every table.
func ClearSeedData(db *gorm.DB, log *zap.Logger) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&entities.YieldRecord{}, &entities.Crop{}, &entities.Animal{}, &entities.Flower{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear seed data: %w", err)
	}
	log.Info("cleared all seed data")
	return nil
}
