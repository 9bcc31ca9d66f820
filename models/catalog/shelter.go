package catalog

import (
	"github.com/pawhub/pawhub/models/dto"
)

// Shelter rescue organization a listing belongs to
type Shelter struct {
	ID         uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID string       `gorm:"column:external_id;size:64;uniqueIndex:idx_shelter_external" json:"externalId,omitempty"`
	Name       string       `gorm:"column:name;size:128" json:"name"`
	City       string       `gorm:"column:city;size:64" json:"city"`
	Email      string       `gorm:"column:email;size:128" json:"email"`
	Phone      string       `gorm:"column:phone;size:32" json:"phone"`
	CreateTime dto.DateTime `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime dto.DateTime `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

func (Shelter) TableName() string {
	return "t_shelter"
}

type Shelters []*Shelter

// ToIDMap indexes shelters by primary key for name fan-in on listings.
func (a Shelters) ToIDMap() map[uint64]*Shelter {
	m := make(map[uint64]*Shelter, len(a))
	for _, item := range a {
		m[item.ID] = item
	}
	return m
}

type ShelterQueryParam struct {
	dto.PaginationParam
	dto.OrderParam

	City     string `query:"city"`
	Keywords string `query:"keywords"`
}

type ShelterQueryResult struct {
	List       Shelters        `json:"list"`
	Pagination *dto.Pagination `json:"pagination"`
}

type ShelterOption struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
