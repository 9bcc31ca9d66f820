package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name  string
		param OrderParam
		want  string
	}{
		{
			name:  "empty key defaults to id DESC",
			param: OrderParam{},
			want:  "id DESC",
		},
		{
			name:  "sortable key ascending",
			param: OrderParam{Key: "name", Direction: OrderByASC},
			want:  "name ASC",
		},
		{
			name:  "sortable key descending",
			param: OrderParam{Key: "create_time", Direction: OrderByDESC},
			want:  "create_time DESC",
		},
		{
			name:  "unknown key falls back to id",
			param: OrderParam{Key: "password", Direction: OrderByASC},
			want:  "id ASC",
		},
		{
			name:  "sql fragment never reaches the clause",
			param: OrderParam{Key: "id; DROP TABLE t_animal--"},
			want:  "id DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.param.ParseOrder("id", "name", "create_time"))
		})
	}
}
