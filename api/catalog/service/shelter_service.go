package service

import (
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/api/catalog/repository"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
)

// ShelterService service layer
type ShelterService struct {
	logger            lib.Logger
	shelterRepository repository.ShelterRepository
}

// NewShelterService creates a new shelter service
func NewShelterService(
	logger lib.Logger,
	shelterRepository repository.ShelterRepository,
) ShelterService {
	return ShelterService{
		logger:            logger,
		shelterRepository: shelterRepository,
	}
}

// WithTrx delegates transaction to repository database
func (a ShelterService) WithTrx(trxHandle *gorm.DB) ShelterService {
	a.shelterRepository = a.shelterRepository.WithTrx(trxHandle)
	return a
}

func (a ShelterService) Query(param *catalog.ShelterQueryParam) (*catalog.ShelterQueryResult, error) {
	return a.shelterRepository.Query(param)
}

func (a ShelterService) Get(id uint64) (*catalog.Shelter, error) {
	return a.shelterRepository.Get(id)
}

func (a ShelterService) Create(shelter *catalog.Shelter) error {
	return a.shelterRepository.Create(shelter)
}

func (a ShelterService) Update(id uint64, shelter *catalog.Shelter) error {
	if _, err := a.shelterRepository.Get(id); err != nil {
		return err
	}

	return a.shelterRepository.Update(id, shelter)
}

func (a ShelterService) Delete(id uint64) error {
	if _, err := a.shelterRepository.Get(id); err != nil {
		return err
	}

	return a.shelterRepository.Delete(id)
}

// Options lists shelters for the filter dropdown
func (a ShelterService) Options() ([]*catalog.ShelterOption, error) {
	return a.shelterRepository.Options()
}
