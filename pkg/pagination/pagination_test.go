package pagination_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/augurk/augurk/pkg/pagination"
	"github.com/augurk/augurk/pkg/query"
)

var testConfig = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		req          pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero values", pagination.PageRequest{}, 1, 20},
		{"negative page", pagination.PageRequest{Page: -3, PageSize: 10}, 1, 10},
		{"valid values unchanged", pagination.PageRequest{Page: 2, PageSize: 50}, 2, 50},
		{"page size capped", pagination.PageRequest{Page: 1, PageSize: 500}, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(testConfig)
			if tt.req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 25}
	if got := req.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values, err := url.ParseQuery("page=2&page_size=10&search=checkout&sort=product,-updated_at")
	if err != nil {
		t.Fatalf("ParseQuery() failed: %v", err)
	}

	got := pagination.PageRequestFromQuery(values, testConfig)

	if got.Page != 2 {
		t.Errorf("Page = %d, want 2", got.Page)
	}
	if got.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", got.PageSize)
	}
	if got.Search == nil || *got.Search != "checkout" {
		t.Errorf("Search = %v, want %q", got.Search, "checkout")
	}

	wantSort := []query.SortField{
		{Field: "product"},
		{Field: "updated_at", Descending: true},
	}
	if diff := cmp.Diff(wantSort, got.Sort); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}
}

func TestPageRequestFromQuery_Defaults(t *testing.T) {
	got := pagination.PageRequestFromQuery(url.Values{}, testConfig)

	if got.Page != 1 {
		t.Errorf("Page = %d, want 1", got.Page)
	}
	if got.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", got.PageSize)
	}
	if got.Search != nil {
		t.Errorf("Search = %v, want nil", got.Search)
	}
	if got.Sort != nil {
		t.Errorf("Sort = %v, want nil", got.Sort)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		data           []string
		total          int
		page           int
		pageSize       int
		wantTotalPages int
		wantDataLen    int
	}{
		{"exact division", []string{"a", "b"}, 40, 1, 20, 2, 2},
		{"remainder rounds up", []string{"a"}, 41, 3, 20, 3, 1},
		{"empty results", nil, 0, 1, 20, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.NewPageResult(tt.data, tt.total, tt.page, tt.pageSize)

			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.Data == nil {
				t.Error("Data is nil, want empty slice")
			}
			if len(got.Data) != tt.wantDataLen {
				t.Errorf("len(Data) = %d, want %d", len(got.Data), tt.wantDataLen)
			}
			if got.Total != tt.total {
				t.Errorf("Total = %d, want %d", got.Total, tt.total)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg pagination.Config
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize() failed: %v", err)
		}
		if cfg.DefaultPageSize != 20 {
			t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
		}
		if cfg.MaxPageSize != 100 {
			t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv(pagination.EnvPaginationDefaultPageSize, "15")
		t.Setenv(pagination.EnvPaginationMaxPageSize, "50")

		var cfg pagination.Config
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize() failed: %v", err)
		}
		if cfg.DefaultPageSize != 15 {
			t.Errorf("DefaultPageSize = %d, want 15", cfg.DefaultPageSize)
		}
		if cfg.MaxPageSize != 50 {
			t.Errorf("MaxPageSize = %d, want 50", cfg.MaxPageSize)
		}
	})

	t.Run("default exceeding max", func(t *testing.T) {
		cfg := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize() succeeded, want error")
		}
	})
}
