package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestSplitCSV(t *testing.T) {
	got := SplitCSV(" React, ,node.js ,SQL")
	want := []string{"React", "node.js", "SQL"}
	if len(got) != len(want) {
		t.Fatalf("SplitCSV length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if SplitCSV("   ") != nil {
		t.Error("SplitCSV of blanks should be nil")
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total int64
		want        float64
	}{
		{1, 3, 33.3},
		{2, 3, 66.7},
		{0, 0, 0},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := Percentage(tt.part, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name           string
		page, size     int
		wantOff        uint64
		wantLimit      int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page", 0, 10, 0, 10},
		{"oversized", 2, 1000, 10, DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, limit := CalculateOffsetLimit(tt.page, tt.size)
			if off != tt.wantOff || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)", tt.page, tt.size, off, limit, tt.wantOff, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(27, 2, 10)
	if info.TotalPages != 3 || info.CurrentPage != 2 || info.TotalItems != 27 {
		t.Errorf("unexpected pagination info: %+v", info)
	}
	empty := NewPaginationInfo(0, 1, 10)
	if empty.TotalPages != 1 {
		t.Errorf("empty result should report one page, got %d", empty.TotalPages)
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/candidate/jobs?page=2&pageSize=25", nil)

	page, size := ParsePaginationParams(c)
	if page != 2 || size != 25 {
		t.Errorf("ParsePaginationParams = (%d, %d), want (2, 25)", page, size)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-5 * time.Hour), "5 hours ago"},
		{now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{now.Add(-65 * 24 * time.Hour), "2 months ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(tt.at, now); got != tt.want {
			t.Errorf("TimeAgo = %q, want %q", got, tt.want)
		}
	}
}
