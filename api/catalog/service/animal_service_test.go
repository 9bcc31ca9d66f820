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
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/pkg/websocket"
)

func newAnimalService(t *testing.T) (AnimalService, lib.Database, lib.Cache) {
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
	cache := lib.NewMemoryCache(lib.Config{Cache: &lib.CacheConfig{}}, logger)
	t.Cleanup(func() { cache.Close() })

	svc := NewAnimalService(
		logger,
		cache,
		websocket.NewHub(logger.DesugarZap),
		repository.NewAnimalRepository(db, logger),
		repository.NewShelterRepository(db, logger),
		repository.NewFavoriteRepository(db, logger),
	)

	return svc, db, cache
}

func TestAnimalGetCachesDetail(t *testing.T) {
	svc, db, _ := newAnimalService(t)
	animal := seedAnimal(t, db, "Biscuit", 0)

	got, err := svc.Get(animal.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "Biscuit", got.Name)

	// a write that bypasses the service is not visible through the cache
	require.NoError(t, db.ORM.Model(&catalog.Animal{}).
		Where("id = ?", animal.ID).
		Update("name", "Renamed").Error)

	cached, err := svc.Get(animal.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "Biscuit", cached.Name)
}

func TestAnimalUpdateInvalidatesDetail(t *testing.T) {
	svc, db, _ := newAnimalService(t)
	animal := seedAnimal(t, db, "Biscuit", 0)

	_, err := svc.Get(animal.ID, 0)
	require.NoError(t, err)

	_, err = svc.Update(animal.ID, &catalog.AnimalForm{
		Name:    "Buttons",
		Species: "dog",
		Status:  constants.AnimalStatusAvailable,
	})
	require.NoError(t, err)

	got, err := svc.Get(animal.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "Buttons", got.Name)
}

func TestAnimalDeleteInvalidatesDetail(t *testing.T) {
	svc, db, _ := newAnimalService(t)
	animal := seedAnimal(t, db, "Mochi", 0)

	_, err := svc.Get(animal.ID, 0)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(animal.ID))

	_, err = svc.Get(animal.ID, 0)
	assert.Error(t, err)
}

func TestAnimalMarkAdoptedInvalidatesDetail(t *testing.T) {
	svc, db, _ := newAnimalService(t)
	animal := seedAnimal(t, db, "Clover", 0)

	_, err := svc.Get(animal.ID, 0)
	require.NoError(t, err)

	require.NoError(t, svc.MarkAdopted(animal.ID))

	got, err := svc.Get(animal.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, constants.AnimalStatusAdopted, got.Status)
}

func TestAnimalGetDecoratesCachedRow(t *testing.T) {
	svc, db, _ := newAnimalService(t)

	shelter := &catalog.Shelter{Name: "Sunny Paws Rescue", City: "Portland"}
	require.NoError(t, db.ORM.Create(shelter).Error)
	animal := seedAnimal(t, db, "Biscuit", shelter.ID)

	const userID = uint64(5)
	require.NoError(t, db.ORM.Create(&catalog.Favorite{UserID: userID, AnimalID: animal.ID}).Error)

	// first call fills the cache, second is served from it; the shelter
	// name and the caller's favorite flag must survive both paths
	for i := 0; i < 2; i++ {
		got, err := svc.Get(animal.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, "Sunny Paws Rescue", got.ShelterName)
		assert.True(t, got.Favorited)
	}

	// an anonymous caller never sees a favorite flag, cached or not
	anon, err := svc.Get(animal.ID, 0)
	require.NoError(t, err)
	assert.False(t, anon.Favorited)
}
