package repository

import (
	"testing"

	"nox/infras/otel/mocks"
	gModel "nox/shared/model"
)

type sortEntity struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	City string `db:"city"`
	gModel.Metadata
}

type aliasedSortEntity struct {
	ID       string `db:"id"`
	ClubName string `column:"name" db:"club_name" table:"clubs"`
}

func TestSortColumn(t *testing.T) {
	repo := NewRepository[sortEntity]("sortEntity", "sort_entities", "id", nil, mocks.NewOtel())

	tests := []struct {
		name     string
		sortBy   string
		expected string
	}{
		{
			name:     "known column",
			sortBy:   "name",
			expected: "sort_entities.name",
		},
		{
			name:     "embedded metadata column",
			sortBy:   "created_at",
			expected: "sort_entities.created_at",
		},
		{
			name:     "unknown column is dropped",
			sortBy:   "no_such_column",
			expected: "",
		},
		{
			name:     "sql in the sort key is dropped",
			sortBy:   "(SELECT pg_sleep(10))",
			expected: "",
		},
		{
			name:     "column of another entity is dropped",
			sortBy:   "club_name",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repo.sortColumn(tt.sortBy); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSortColumnAliased(t *testing.T) {
	repo := NewRepository[aliasedSortEntity]("aliasedSortEntity", "alias_entities", "id", nil, mocks.NewOtel())

	// aliased joined columns sort by their source column, keyed by the alias
	if got := repo.sortColumn("club_name"); got != "clubs.name" {
		t.Errorf("expected clubs.name, got %q", got)
	}

	if got := repo.sortColumn("name"); got != "" {
		t.Errorf("expected the raw source column name to be rejected, got %q", got)
	}
}
