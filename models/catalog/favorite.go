package catalog

import (
	"github.com/pawhub/pawhub/models/dto"
)

// Favorite marks an animal a user wants to follow; unique per (user, animal)
type Favorite struct {
	ID         uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64       `gorm:"column:user_id;uniqueIndex:idx_favorite_user_animal" json:"userId"`
	AnimalID   uint64       `gorm:"column:animal_id;uniqueIndex:idx_favorite_user_animal" json:"animalId"`
	CreateTime dto.DateTime `gorm:"column:create_time;autoCreateTime" json:"createTime"`
}

func (Favorite) TableName() string {
	return "t_favorite"
}

type Favorites []*Favorite

func (a Favorites) ToAnimalIDs() []uint64 {
	ids := make([]uint64, len(a))
	for i, item := range a {
		ids[i] = item.AnimalID
	}
	return ids
}

// ToAnimalIDSet indexes favorited animal ids for O(1) membership checks
// when tagging a listing page.
func (a Favorites) ToAnimalIDSet() map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(a))
	for _, item := range a {
		set[item.AnimalID] = struct{}{}
	}
	return set
}

type FavoriteQueryParam struct {
	dto.PaginationParam

	UserID    uint64   `query:"-"`
	AnimalIDs []uint64 `query:"-"`
}

type FavoriteQueryResult struct {
	List       Favorites       `json:"list"`
	Pagination *dto.Pagination `json:"pagination"`
}
