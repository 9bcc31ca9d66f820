package service

import (
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/api/catalog/repository"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
)

// FavoriteService service layer
type FavoriteService struct {
	logger             lib.Logger
	favoriteRepository repository.FavoriteRepository
	animalRepository   repository.AnimalRepository
	shelterRepository  repository.ShelterRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(
	logger lib.Logger,
	favoriteRepository repository.FavoriteRepository,
	animalRepository repository.AnimalRepository,
	shelterRepository repository.ShelterRepository,
) FavoriteService {
	return FavoriteService{
		logger:             logger,
		favoriteRepository: favoriteRepository,
		animalRepository:   animalRepository,
		shelterRepository:  shelterRepository,
	}
}

// WithTrx delegates transaction to repository database
func (a FavoriteService) WithTrx(trxHandle *gorm.DB) FavoriteService {
	a.favoriteRepository = a.favoriteRepository.WithTrx(trxHandle)
	return a
}

// Add marks an animal as a favorite of the user. Adding an existing
// favorite is a no-op so the endpoint stays idempotent.
func (a FavoriteService) Add(userID, animalID uint64) error {
	if _, err := a.animalRepository.Get(animalID); err != nil {
		return err
	}

	if _, err := a.favoriteRepository.Get(userID, animalID); err == nil {
		return nil
	} else if !errors.Is(err, errors.DatabaseRecordNotFound) {
		return err
	}

	return a.favoriteRepository.Create(&catalog.Favorite{
		UserID:   userID,
		AnimalID: animalID,
	})
}

// Remove drops a favorite; removing an absent one is a no-op
func (a FavoriteService) Remove(userID, animalID uint64) error {
	_, err := a.favoriteRepository.Delete(userID, animalID)
	return err
}

// Query pages through the user's favorited animals, newest first
func (a FavoriteService) Query(userID uint64, param *catalog.FavoriteQueryParam) (*catalog.AnimalQueryResult, error) {
	param.UserID = userID

	favoriteQR, err := a.favoriteRepository.Query(param)
	if err != nil {
		return nil, err
	}

	animals, err := a.animalRepository.GetByIDs(favoriteQR.List.ToAnimalIDs())
	if err != nil {
		return nil, err
	}

	// keep the favorites ordering, drop rows whose listing was removed
	byID := make(map[uint64]*catalog.Animal, len(animals))
	for _, animal := range animals {
		byID[animal.ID] = animal
	}

	ordered := make(catalog.Animals, 0, len(favoriteQR.List))
	for _, favorite := range favoriteQR.List {
		if animal, ok := byID[favorite.AnimalID]; ok {
			animal.Favorited = true
			ordered = append(ordered, animal)
		}
	}

	if shelterIDs := ordered.ToShelterIDs(); len(shelterIDs) > 0 {
		shelterMap, err := a.shelterRepository.GetByIDs(shelterIDs)
		if err != nil {
			return nil, err
		}
		for _, animal := range ordered {
			if shelter, ok := shelterMap[animal.ShelterID]; ok {
				animal.ShelterName = shelter.Name
			}
		}
	}

	return &catalog.AnimalQueryResult{
		List:       ordered,
		Pagination: favoriteQR.Pagination,
	}, nil
}
