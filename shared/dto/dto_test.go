package dto_test

import (
	"net/http"
	"net/url"
	"nox/shared/constant"
	"nox/shared/dto"
	"nox/shared/model"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "name",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:   3,
				Limit:  constant.DefaultValueLimit,
				SortBy: "name",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "equality",
			filter: dto.Filter{
				Field:    "status",
				Value:    "active",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "status = :status",
			expectedArgs: map[string]any{"status": "active"},
		},
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Value:    "active",
				Operator: dto.FilterOperatorEq,
				Table:    "events",
			},
			expectedSQL:  "events.status = :status",
			expectedArgs: map[string]any{"status": "active"},
		},
		{
			name: "equality with custom argument name",
			filter: dto.Filter{
				ArgName:  "event_status",
				Field:    "status",
				Value:    "active",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "status = :event_status",
			expectedArgs: map[string]any{"event_status": "active"},
		},
		{
			name: "like",
			filter: dto.Filter{
				Field:    "name",
				Value:    "nox",
				Operator: dto.FilterOperatorLike,
			},
			expectedSQL:  "LOWER(name) LIKE LOWER(:name) ",
			expectedArgs: map[string]any{"name": "%nox%"},
		},
		{
			name: "in with slice value",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"new", "preparing"},
				Operator: dto.FilterOperatorIn,
			},
			expectedSQL:  "status IN (:status_0, :status_1) ",
			expectedArgs: map[string]any{"status_0": "new", "status_1": "preparing"},
		},
		{
			name: "greater or equal",
			filter: dto.Filter{
				Field:    "event_date",
				Value:    "2024-06-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedSQL:  "event_date >= :event_date",
			expectedArgs: map[string]any{"event_date": "2024-06-01"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "user_id",
				Operator: dto.FilterIsNull,
			},
			expectedSQL:  "user_id IS NULL",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected clause %q, got %q", tt.expectedSQL, sql)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, want := range tt.expectedArgs {
				got, ok := args[key]
				if !ok {
					t.Errorf("expected arg %q to be present", key)

					continue
				}

				if got != want {
					t.Errorf("expected arg %q to be %v, got %v", key, want, got)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("joins filters with AND by default", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "city", Value: "berlin", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "status", Value: "upcoming", Operator: dto.FilterOperatorEq},
			},
		}

		sql, args := group.GetWhereClause()

		expected := "(city = :city AND status = :status)"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}

		if args["city"] != "berlin" || args["status"] != "upcoming" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("joins filters with OR when requested", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "city", Value: "berlin", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "city", Value: "paris", Operator: dto.FilterOperatorEq, ArgName: "city_alt"},
			},
		}

		sql, _ := group.GetWhereClause()

		expected := "(city = :city OR city = :city_alt)"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}
	})

	t.Run("skips filters with empty string values", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "city", Value: "", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "genre", Value: "", Operator: dto.FilterOperatorLike},
				dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq},
			},
		}

		sql, args := group.GetWhereClause()

		expected := "(status = :status)"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}

		if _, ok := args["city"]; ok {
			t.Error("expected empty city filter to be pruned")
		}
	})

	t.Run("keeps null check filters despite carrying no value", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "user_id", Operator: dto.FilterIsNotNull},
			},
		}

		sql, _ := group.GetWhereClause()

		expected := "(user_id IS NOT NULL)"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}
	})

	t.Run("returns empty clause when every filter is pruned", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "city", Value: "", Operator: dto.FilterOperatorEq},
			},
		}

		sql, args := group.GetWhereClause()

		if sql != "" {
			t.Errorf("expected empty clause, got %q", sql)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("nests filter groups", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "club_id", Value: "club-1", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "status", Value: "new", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "status_alt", Field: "status", Value: "preparing", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		sql, args := group.GetWhereClause()

		expected := "(club_id = :club_id AND (status = :status OR status = :status_alt))"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}

		if len(args) != 3 {
			t.Errorf("expected 3 args, got %d: %v", len(args), args)
		}
	})
}
