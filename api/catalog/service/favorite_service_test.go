package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/api/catalog/repository"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
)

func newFavoriteService(t *testing.T) (FavoriteService, lib.Database) {
	t.Helper()

	orm, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, orm.AutoMigrate(
		&catalog.Animal{},
		&catalog.Shelter{},
		&catalog.Favorite{},
	))

	db := lib.Database{ORM: orm}
	logger := lib.Logger{Zap: zap.NewNop().Sugar(), DesugarZap: zap.NewNop()}

	svc := NewFavoriteService(
		logger,
		repository.NewFavoriteRepository(db, logger),
		repository.NewAnimalRepository(db, logger),
		repository.NewShelterRepository(db, logger),
	)

	return svc, db
}

func seedAnimal(t *testing.T, db lib.Database, name string, shelterID uint64) *catalog.Animal {
	t.Helper()

	animal := &catalog.Animal{
		Name:      name,
		Species:   "dog",
		Status:    constants.AnimalStatusAvailable,
		ShelterID: shelterID,
	}
	require.NoError(t, db.ORM.Create(animal).Error)

	return animal
}

func TestFavoriteAddIsIdempotent(t *testing.T) {
	svc, db := newFavoriteService(t)
	animal := seedAnimal(t, db, "Biscuit", 0)

	require.NoError(t, svc.Add(1, animal.ID))
	require.NoError(t, svc.Add(1, animal.ID))

	var count int64
	require.NoError(t, db.ORM.Model(&catalog.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFavoriteAddUnknownAnimal(t *testing.T) {
	svc, _ := newFavoriteService(t)

	err := svc.Add(1, 999)
	assert.ErrorIs(t, err, errors.AnimalRecordNotFound)
}

func TestFavoriteRemoveIsIdempotent(t *testing.T) {
	svc, db := newFavoriteService(t)
	animal := seedAnimal(t, db, "Mochi", 0)

	require.NoError(t, svc.Add(7, animal.ID))
	require.NoError(t, svc.Remove(7, animal.ID))
	require.NoError(t, svc.Remove(7, animal.ID))

	var count int64
	require.NoError(t, db.ORM.Model(&catalog.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestFavoriteQueryKeepsOrderAndDropsRemovedListings(t *testing.T) {
	svc, db := newFavoriteService(t)

	shelter := &catalog.Shelter{Name: "Sunny Paws Rescue", City: "Portland"}
	require.NoError(t, db.ORM.Create(shelter).Error)

	first := seedAnimal(t, db, "Biscuit", shelter.ID)
	second := seedAnimal(t, db, "Mochi", shelter.ID)
	third := seedAnimal(t, db, "Clover", shelter.ID)

	const userID = uint64(3)
	require.NoError(t, svc.Add(userID, first.ID))
	require.NoError(t, svc.Add(userID, second.ID))
	require.NoError(t, svc.Add(userID, third.ID))

	// soft-delete one listing; the favorite row stays behind
	require.NoError(t, db.ORM.Model(&catalog.Animal{}).
		Where("id = ?", second.ID).
		Update("is_deleted", 1).Error)

	qr, err := svc.Query(userID, &catalog.FavoriteQueryParam{})
	require.NoError(t, err)

	require.Len(t, qr.List, 2)
	assert.EqualValues(t, 3, qr.Pagination.Total)

	for _, animal := range qr.List {
		assert.True(t, animal.Favorited)
		assert.Equal(t, "Sunny Paws Rescue", animal.ShelterName)
	}
}

func TestFavoriteQueryEmpty(t *testing.T) {
	svc, _ := newFavoriteService(t)

	qr, err := svc.Query(42, &catalog.FavoriteQueryParam{})
	require.NoError(t, err)
	assert.Empty(t, qr.List)
	assert.EqualValues(t, 0, qr.Pagination.Total)
}
