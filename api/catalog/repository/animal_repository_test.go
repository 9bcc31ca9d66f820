package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/models/dto"
)

func newAnimalRepository(t *testing.T) (AnimalRepository, lib.Database) {
	t.Helper()

	orm, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, orm.AutoMigrate(&catalog.Animal{}))

	db := lib.Database{ORM: orm}
	logger := lib.Logger{Zap: zap.NewNop().Sugar(), DesugarZap: zap.NewNop()}

	return NewAnimalRepository(db, logger), db
}

func seedCatalog(t *testing.T, db lib.Database) {
	t.Helper()

	rows := catalog.Animals{
		{Name: "Biscuit", Species: "dog", Breed: "Labrador Retriever", Gender: "male",
			AgeMonths: 18, Size: "large", Status: constants.AnimalStatusAvailable,
			ShelterID: 1, Description: "loves fetch"},
		{Name: "Mochi", Species: "cat", Breed: "Domestic Shorthair", Gender: "female",
			AgeMonths: 8, Size: "small", Status: constants.AnimalStatusAvailable,
			ShelterID: 1, Description: "quiet lap cat"},
		{Name: "Rex", Species: "dog", Breed: "German Shepherd", Gender: "male",
			AgeMonths: 60, Size: "large", Status: constants.AnimalStatusAdopted,
			ShelterID: 2, Description: "retired service dog"},
		{Name: "Clover", Species: "rabbit", Breed: "Holland Lop", Gender: "female",
			AgeMonths: 12, Size: "small", Status: constants.AnimalStatusPending,
			ShelterID: 2, Description: "litter trained"},
		{Name: "Shadow", Species: "cat", Breed: "Maine Coon", Gender: "unknown",
			AgeMonths: 36, Size: "medium", Status: constants.AnimalStatusAvailable,
			ShelterID: 2, Description: "gentle giant, loves fetch"},
	}
	for _, row := range rows {
		require.NoError(t, db.ORM.Create(row).Error)
	}

	// soft-deleted rows never surface in queries
	gone := &catalog.Animal{Name: "Ghost", Species: "dog", Breed: "Labrador Retriever",
		Status: constants.AnimalStatusAvailable, IsDeleted: 1}
	require.NoError(t, db.ORM.Create(gone).Error)
}

func TestAnimalQueryFilters(t *testing.T) {
	repo, db := newAnimalRepository(t)
	seedCatalog(t, db)

	tests := []struct {
		name  string
		param catalog.AnimalQueryParam
		want  []string
	}{
		{
			name:  "no filter returns everything except soft-deleted",
			param: catalog.AnimalQueryParam{},
			want:  []string{"Biscuit", "Mochi", "Rex", "Clover", "Shadow"},
		},
		{
			name:  "species",
			param: catalog.AnimalQueryParam{Species: "dog"},
			want:  []string{"Biscuit", "Rex"},
		},
		{
			name:  "breed",
			param: catalog.AnimalQueryParam{Breed: "Maine Coon"},
			want:  []string{"Shadow"},
		},
		{
			name:  "gender",
			param: catalog.AnimalQueryParam{Gender: "female"},
			want:  []string{"Mochi", "Clover"},
		},
		{
			name:  "status",
			param: catalog.AnimalQueryParam{Status: constants.AnimalStatusAvailable},
			want:  []string{"Biscuit", "Mochi", "Shadow"},
		},
		{
			name:  "size",
			param: catalog.AnimalQueryParam{Size: "large"},
			want:  []string{"Biscuit", "Rex"},
		},
		{
			name:  "shelter",
			param: catalog.AnimalQueryParam{ShelterID: 2},
			want:  []string{"Rex", "Clover", "Shadow"},
		},
		{
			name:  "age minimum",
			param: catalog.AnimalQueryParam{AgeMinimum: 30},
			want:  []string{"Rex", "Shadow"},
		},
		{
			name:  "age maximum",
			param: catalog.AnimalQueryParam{AgeMaximum: 12},
			want:  []string{"Mochi", "Clover"},
		},
		{
			name:  "age range",
			param: catalog.AnimalQueryParam{AgeMinimum: 10, AgeMaximum: 40},
			want:  []string{"Biscuit", "Clover", "Shadow"},
		},
		{
			name:  "keywords match name",
			param: catalog.AnimalQueryParam{Keywords: "Rex"},
			want:  []string{"Rex"},
		},
		{
			name:  "keywords match breed",
			param: catalog.AnimalQueryParam{Keywords: "Labrador"},
			want:  []string{"Biscuit"},
		},
		{
			name:  "keywords match description",
			param: catalog.AnimalQueryParam{Keywords: "fetch"},
			want:  []string{"Biscuit", "Shadow"},
		},
		{
			name: "species and status combined",
			param: catalog.AnimalQueryParam{
				Species: "cat",
				Status:  constants.AnimalStatusAvailable,
			},
			want: []string{"Mochi", "Shadow"},
		},
		{
			name: "shelter, size and gender combined",
			param: catalog.AnimalQueryParam{
				ShelterID: 2,
				Size:      "small",
				Gender:    "female",
			},
			want: []string{"Clover"},
		},
		{
			name:  "no match",
			param: catalog.AnimalQueryParam{Species: "bird"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qr, err := repo.Query(&tt.param)
			require.NoError(t, err)

			got := make([]string, 0, len(qr.List))
			for _, animal := range qr.List {
				got = append(got, animal.Name)
			}

			assert.ElementsMatch(t, tt.want, got)
			assert.EqualValues(t, len(tt.want), qr.Pagination.Total)
		})
	}
}

func TestAnimalQueryPaginates(t *testing.T) {
	repo, db := newAnimalRepository(t)
	seedCatalog(t, db)

	qr, err := repo.Query(&catalog.AnimalQueryParam{
		PaginationParam: dto.PaginationParam{PageNum: 2, PageSize: 2},
		OrderParam:      dto.OrderParam{Key: "id", Direction: dto.OrderByASC},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 5, qr.Pagination.Total)
	assert.Equal(t, 3, qr.Pagination.TotalPages)
	require.Len(t, qr.List, 2)
	assert.Equal(t, "Rex", qr.List[0].Name)
	assert.Equal(t, "Clover", qr.List[1].Name)
}

func TestAnimalMarkVanished(t *testing.T) {
	repo, db := newAnimalRepository(t)

	rows := catalog.Animals{
		{Name: "Synced", ExternalID: "u-1", Species: "dog", Status: constants.AnimalStatusAvailable},
		{Name: "StillThere", ExternalID: "u-2", Species: "dog", Status: constants.AnimalStatusAvailable},
		{Name: "Manual", Species: "dog", Status: constants.AnimalStatusAvailable},
		{Name: "AlreadyAdopted", ExternalID: "u-3", Species: "dog", Status: constants.AnimalStatusAdopted},
	}
	for _, row := range rows {
		require.NoError(t, db.ORM.Create(row).Error)
	}

	ids, err := repo.MarkVanished([]string{"u-2"}, constants.AnimalStatusAdopted)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, rows[0].ID, ids[0])

	flipped, err := repo.Get(rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, constants.AnimalStatusAdopted, flipped.Status)

	// the still-reported listing, the manual one and the already-adopted
	// one are untouched
	for _, id := range []uint64{rows[1].ID, rows[2].ID} {
		animal, err := repo.Get(id)
		require.NoError(t, err)
		assert.Equal(t, constants.AnimalStatusAvailable, animal.Status)
	}
}
