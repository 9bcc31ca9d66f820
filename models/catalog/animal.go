package catalog

import (
	"github.com/pawhub/pawhub/models/dto"
)

// Animal adoption listing
// Status: available, pending, adopted
// Gender: male, female, unknown
type Animal struct {
	ID          uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID  string       `gorm:"column:external_id;size:64;uniqueIndex:idx_animal_external" json:"externalId,omitempty"`
	Name        string       `gorm:"column:name;size:128;index:idx_animal_name" json:"name"`
	Species     string       `gorm:"column:species;size:32;index:idx_animal_species" json:"species"`
	Breed       string       `gorm:"column:breed;size:128" json:"breed"`
	Gender      string       `gorm:"column:gender;size:16;default:unknown" json:"gender"`
	AgeMonths   int          `gorm:"column:age_months" json:"ageMonths"`
	Size        string       `gorm:"column:size;size:16" json:"size"`
	Description string       `gorm:"column:description;type:text" json:"description"`
	Status      string       `gorm:"column:status;size:16;default:available;index:idx_animal_status" json:"status"`
	ShelterID   uint64       `gorm:"column:shelter_id;index:idx_animal_shelter" json:"shelterId"`
	PhotoURL    string       `gorm:"column:photo_url;size:512" json:"photoUrl"`
	CreateTime  dto.DateTime `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime  dto.DateTime `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
	IsDeleted   int          `gorm:"column:is_deleted;default:0" json:"-"`

	// not database columns
	ShelterName string `gorm:"-" json:"shelterName,omitempty"`
	Favorited   bool   `gorm:"-" json:"favorited,omitempty"`
}

func (Animal) TableName() string {
	return "t_animal"
}

type Animals []*Animal

func (a Animals) ToIDs() []uint64 {
	ids := make([]uint64, len(a))
	for i, item := range a {
		ids[i] = item.ID
	}
	return ids
}

func (a Animals) ToShelterIDs() []uint64 {
	ids := make([]uint64, 0, len(a))
	seen := make(map[uint64]struct{}, len(a))
	for _, item := range a {
		if item.ShelterID == 0 {
			continue
		}
		if _, ok := seen[item.ShelterID]; ok {
			continue
		}
		seen[item.ShelterID] = struct{}{}
		ids = append(ids, item.ShelterID)
	}
	return ids
}

type AnimalQueryParam struct {
	dto.PaginationParam
	dto.OrderParam

	Species    string `query:"species"`
	Breed      string `query:"breed"`
	Gender     string `query:"gender"`
	Status     string `query:"status"`
	Size       string `query:"size"`
	ShelterID  uint64 `query:"shelterId"`
	AgeMinimum int    `query:"ageMin"`
	AgeMaximum int    `query:"ageMax"`
	Keywords   string `query:"keywords"`
	ExternalID string `query:"-"`
}

type AnimalQueryResult struct {
	List       Animals         `json:"list"`
	Pagination *dto.Pagination `json:"pagination"`
}

// AnimalOptions aggregates the distinct filter values the browsing UI
// offers (species and breeds currently listed).
type AnimalOptions struct {
	Species []string `json:"species"`
	Breeds  []string `json:"breeds"`
}

// AnimalForm is the admin maintenance payload.
type AnimalForm struct {
	Name        string `json:"name" validate:"required,max=128"`
	Species     string `json:"species" validate:"required,max=32"`
	Breed       string `json:"breed" validate:"max=128"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female unknown"`
	AgeMonths   int    `json:"ageMonths" validate:"gte=0"`
	Size        string `json:"size" validate:"omitempty,oneof=small medium large xlarge"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=available pending adopted"`
	ShelterID   uint64 `json:"shelterId"`
	PhotoURL    string `json:"photoUrl" validate:"omitempty,url"`
}

// ToAnimal copies the form onto a model.
func (f AnimalForm) ToAnimal() *Animal {
	gender := f.Gender
	if gender == "" {
		gender = "unknown"
	}
	status := f.Status
	if status == "" {
		status = "available"
	}

	return &Animal{
		Name:        f.Name,
		Species:     f.Species,
		Breed:       f.Breed,
		Gender:      gender,
		AgeMonths:   f.AgeMonths,
		Size:        f.Size,
		Description: f.Description,
		Status:      status,
		ShelterID:   f.ShelterID,
		PhotoURL:    f.PhotoURL,
	}
}
