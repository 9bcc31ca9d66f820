package service

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/api/catalog/repository"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/pkg/websocket"
)

const (
	optionsCacheTTL = 10 * time.Minute
	detailCacheTTL  = 5 * time.Minute
)

// AnimalService service layer
type AnimalService struct {
	logger             lib.Logger
	cache              lib.Cache
	hub                *websocket.Hub
	animalRepository   repository.AnimalRepository
	shelterRepository  repository.ShelterRepository
	favoriteRepository repository.FavoriteRepository
}

// NewAnimalService creates a new animal service
func NewAnimalService(
	logger lib.Logger,
	cache lib.Cache,
	hub *websocket.Hub,
	animalRepository repository.AnimalRepository,
	shelterRepository repository.ShelterRepository,
	favoriteRepository repository.FavoriteRepository,
) AnimalService {
	return AnimalService{
		logger:             logger,
		cache:              cache,
		hub:                hub,
		animalRepository:   animalRepository,
		shelterRepository:  shelterRepository,
		favoriteRepository: favoriteRepository,
	}
}

// WithTrx delegates transaction to repository database
func (a AnimalService) WithTrx(trxHandle *gorm.DB) AnimalService {
	a.animalRepository = a.animalRepository.WithTrx(trxHandle)
	a.favoriteRepository = a.favoriteRepository.WithTrx(trxHandle)

	return a
}

// Query lists animals with shelter names fanned in; when userID is
// non-zero each row is tagged with the caller's favorite state
func (a AnimalService) Query(param *catalog.AnimalQueryParam, userID uint64) (*catalog.AnimalQueryResult, error) {
	qr, err := a.animalRepository.Query(param)
	if err != nil {
		return nil, err
	}

	if err := a.decorate(qr.List, userID); err != nil {
		return nil, err
	}

	return qr, nil
}

// Get loads one listing with shelter name and favorite state. The raw
// row is cached by id; decoration happens per request because the
// favorite flag belongs to the caller, not the listing.
func (a AnimalService) Get(id uint64, userID uint64) (*catalog.Animal, error) {
	animal := new(catalog.Animal)

	if err := a.cache.Get(detailCacheKey(id), animal); err != nil {
		if !errors.Is(err, errors.CacheKeyNoExist) {
			a.logger.Zap.Warnf("detail cache read failed: %v", err)
		}

		animal, err = a.animalRepository.Get(id)
		if err != nil {
			return nil, err
		}

		if err := a.cache.Set(detailCacheKey(id), animal, detailCacheTTL); err != nil {
			a.logger.Zap.Warnf("detail cache write failed: %v", err)
		}
	}

	if err := a.decorate(catalog.Animals{animal}, userID); err != nil {
		return nil, err
	}

	return animal, nil
}

// decorate attaches shelter names and, for a signed-in caller, favorite
// flags onto a page of listings
func (a AnimalService) decorate(list catalog.Animals, userID uint64) error {
	if len(list) == 0 {
		return nil
	}

	if shelterIDs := list.ToShelterIDs(); len(shelterIDs) > 0 {
		shelterMap, err := a.shelterRepository.GetByIDs(shelterIDs)
		if err != nil {
			return err
		}

		for _, animal := range list {
			if shelter, ok := shelterMap[animal.ShelterID]; ok {
				animal.ShelterName = shelter.Name
			}
		}
	}

	if userID > 0 {
		favoriteQR, err := a.favoriteRepository.Query(&catalog.FavoriteQueryParam{
			UserID:    userID,
			AnimalIDs: list.ToIDs(),
		})
		if err != nil {
			return err
		}

		favorited := favoriteQR.List.ToAnimalIDSet()
		for _, animal := range list {
			_, animal.Favorited = favorited[animal.ID]
		}
	}

	return nil
}

func (a AnimalService) Create(form *catalog.AnimalForm) (*catalog.Animal, error) {
	if form.ShelterID > 0 {
		if _, err := a.shelterRepository.Get(form.ShelterID); err != nil {
			return nil, err
		}
	}

	animal := form.ToAnimal()
	if err := a.animalRepository.Create(animal); err != nil {
		return nil, err
	}

	a.invalidateOptions()
	a.hub.Broadcast(websocket.TopicAnimalCreated, animal)

	return animal, nil
}

func (a AnimalService) Update(id uint64, form *catalog.AnimalForm) (*catalog.Animal, error) {
	if _, err := a.animalRepository.Get(id); err != nil {
		return nil, err
	}

	if form.ShelterID > 0 {
		if _, err := a.shelterRepository.Get(form.ShelterID); err != nil {
			return nil, err
		}
	}

	animal := form.ToAnimal()
	if err := a.animalRepository.Update(id, animal); err != nil {
		return nil, err
	}

	updated, err := a.animalRepository.Get(id)
	if err != nil {
		return nil, err
	}

	a.invalidateOptions()
	a.invalidateDetail(id)
	a.hub.Broadcast(websocket.TopicAnimalUpdated, updated)

	return updated, nil
}

// Delete soft-deletes a listing and clears favorites pointing at it
func (a AnimalService) Delete(id uint64) error {
	if _, err := a.animalRepository.Get(id); err != nil {
		return err
	}

	if err := a.animalRepository.Delete(id); err != nil {
		return err
	}

	if err := a.favoriteRepository.DeleteByAnimal(id); err != nil {
		return err
	}

	a.invalidateOptions()
	a.invalidateDetail(id)

	return nil
}

// Options returns the distinct species and breeds for the filter bar,
// cached because the values only change on writes
func (a AnimalService) Options(species string) (*catalog.AnimalOptions, error) {
	key := optionsCacheKey(species)

	cached := new(catalog.AnimalOptions)
	if err := a.cache.Get(key, cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, errors.CacheKeyNoExist) {
		a.logger.Zap.Warnf("options cache read failed: %v", err)
	}

	speciesValues, err := a.animalRepository.DistinctSpecies()
	if err != nil {
		return nil, err
	}

	breeds, err := a.animalRepository.DistinctBreeds(species)
	if err != nil {
		return nil, err
	}

	options := &catalog.AnimalOptions{
		Species: speciesValues,
		Breeds:  breeds,
	}

	if err := a.cache.Set(key, options, optionsCacheTTL); err != nil {
		a.logger.Zap.Warnf("options cache write failed: %v", err)
	}

	return options, nil
}

// invalidateOptions drops every cached options variant: the all-species
// entry plus one per species currently listed
func (a AnimalService) invalidateOptions() {
	keys := []string{optionsCacheKey("")}

	if speciesValues, err := a.animalRepository.DistinctSpecies(); err == nil {
		keys = append(keys, lo.Map(speciesValues, func(s string, _ int) string {
			return optionsCacheKey(s)
		})...)
	}

	if _, err := a.cache.Delete(keys...); err != nil {
		a.logger.Zap.Warnf("options cache invalidation failed: %v", err)
	}
}

func optionsCacheKey(species string) string {
	if species == "" {
		species = "all"
	}
	return fmt.Sprintf("animal:options:%s", species)
}

func detailCacheKey(id uint64) string {
	return fmt.Sprintf("animal:detail:%d", id)
}

// invalidateDetail drops the cached detail row after a mutation
func (a AnimalService) invalidateDetail(id uint64) {
	if _, err := a.cache.Delete(detailCacheKey(id)); err != nil {
		a.logger.Zap.Warnf("detail cache invalidation failed: %v", err)
	}
}

// MarkAdopted is the shortcut behind the admin "adopted" action
func (a AnimalService) MarkAdopted(id uint64) error {
	animal, err := a.animalRepository.Get(id)
	if err != nil {
		return err
	}

	if animal.Status == constants.AnimalStatusAdopted {
		return nil
	}

	if err := a.animalRepository.UpdateStatus(id, constants.AnimalStatusAdopted); err != nil {
		return err
	}

	a.invalidateDetail(id)

	return nil
}
