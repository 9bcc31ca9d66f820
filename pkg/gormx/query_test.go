package gormx

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/models/dto"
)

type toy struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:64"`
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&toy{}))

	return db
}

func TestQueryPagination(t *testing.T) {
	db := newTestDB(t)

	for i := 1; i <= 7; i++ {
		require.NoError(t, db.Create(&toy{Name: fmt.Sprintf("toy-%d", i)}).Error)
	}

	var out []*toy
	page, err := QueryPagination(
		db.Model(&toy{}).Order("id"),
		dto.PaginationParam{PageNum: 2, PageSize: 3},
		&out,
	)
	require.NoError(t, err)

	assert.EqualValues(t, 7, page.Total)
	assert.Equal(t, 2, page.PageNum)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)

	require.Len(t, out, 3)
	assert.Equal(t, "toy-4", out[0].Name)
	assert.Equal(t, "toy-6", out[2].Name)
}

func TestQueryPaginationPastEnd(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&toy{Name: "only"}).Error)

	var out []*toy
	page, err := QueryPagination(
		db.Model(&toy{}),
		dto.PaginationParam{PageNum: 5, PageSize: 10},
		&out,
	)
	require.NoError(t, err)

	assert.EqualValues(t, 1, page.Total)
	assert.Empty(t, out)
}

func TestQueryOne(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&toy{Name: "ball"}).Error)

	var found toy
	ok, err := QueryOne(db.Model(&toy{}).Where("name = ?", "ball"), &found)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ball", found.Name)

	var missing toy
	ok, err = QueryOne(db.Model(&toy{}).Where("name = ?", "bone"), &missing)
	require.NoError(t, err)
	assert.False(t, ok)
}
