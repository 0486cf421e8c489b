package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dalu/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedAll(t *testing.T) {
	db := openTestDB(t)
	log := zap.NewNop()

	require.NoError(t, SeedAll(db, log))
	assert.EqualValues(t, 5, count(t, db, &entities.Crop{}))
	assert.EqualValues(t, 5, count(t, db, &entities.Animal{}))
	assert.EqualValues(t, 5, count(t, db, &entities.Flower{}))
	assert.EqualValues(t, 4, count(t, db, &entities.YieldRecord{}))

	// second run leaves populated tables alone
	require.NoError(t, SeedAll(db, log))
	assert.EqualValues(t, 5, count(t, db, &entities.Crop{}))
	assert.EqualValues(t, 4, count(t, db, &entities.YieldRecord{}))
}

func TestSeedRoundTripsTypedColumns(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedAll(db, zap.NewNop()))

	var rose entities.Flower
	require.NoError(t, db.Where("name = ?", "Rose").First(&rose).Error)
	assert.Equal(t, []string{"pink", "white", "yellow"}, rose.Colors)
	require.NotNil(t, rose.BloomSeason)
	assert.Equal(t, entities.SeasonMultiple, *rose.BloomSeason)
	assert.Equal(t, "2023-11-05", rose.PlantDate.String())

	var rice entities.Crop
	require.NoError(t, db.Where("name = ?", "Rice").First(&rice).Error)
	require.NotNil(t, rice.ActualHarvestDate)
	assert.Equal(t, "2024-09-18", rice.ActualHarvestDate.String())
	assert.Equal(t, entities.CropHarvested, rice.Status)
}

func TestClearAndRecreate(t *testing.T) {
	db := openTestDB(t)
	log := zap.NewNop()
	require.NoError(t, SeedAll(db, log))

	require.NoError(t, ClearSeedData(db, log))
	assert.Zero(t, count(t, db, &entities.Crop{}))
	assert.Zero(t, count(t, db, &entities.YieldRecord{}))

	require.NoError(t, SeedAll(db, log))
	require.NoError(t, Recreate(db, log))
	assert.Zero(t, count(t, db, &entities.Flower{}))
	assert.True(t, db.Migrator().HasTable(&entities.Animal{}))
}
