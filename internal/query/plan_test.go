package query

import (
	"strings"
	"testing"
	"time"

	"github.com/kindledhq/kindled/internal/models"
)

func TestBuildPlanTypeFilter(t *testing.T) {
	spec := DefaultSpec()
	spec.Type = models.TypeGeneral

	p := BuildPlan(spec, ModeFallback)
	if p.Where != "type = ?" {
		t.Errorf("where = %q", p.Where)
	}
	if len(p.Args) != 1 || p.Args[0] != "general" {
		t.Errorf("args = %v", p.Args)
	}
}

func TestBuildPlanNoFilters(t *testing.T) {
	p := BuildPlan(DefaultSpec(), ModeFallback)
	if p.Where != "" || len(p.Args) != 0 {
		t.Errorf("expected empty filter, got %q %v", p.Where, p.Args)
	}
	if p.Limit != 20 || p.Skip != 0 {
		t.Errorf("pagination = limit %d skip %d", p.Limit, p.Skip)
	}
}

func TestBuildPlanDateRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	spec := DefaultSpec()
	spec.DateFrom = &from
	spec.DateTo = &to

	p := BuildPlan(spec, ModeFallback)
	if p.Where != "created_at >= ? AND created_at <= ?" {
		t.Errorf("where = %q", p.Where)
	}
	if len(p.Args) != 2 {
		t.Fatalf("args = %v", p.Args)
	}
}

func TestBuildPlanInvertedDateRangeStillBuilds(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	spec := DefaultSpec()
	spec.DateFrom = &from
	spec.DateTo = &to

	// An inverted range is not an error; the plan just matches nothing.
	p := BuildPlan(spec, ModeFallback)
	if p == nil || len(p.Args) != 2 {
		t.Fatalf("inverted range should still produce a plan: %+v", p)
	}
}

func TestBuildPlanFullTextCondition(t *testing.T) {
	spec := DefaultSpec()
	spec.Text = "grace"

	p := BuildPlan(spec, ModeFullText)
	if !strings.Contains(p.Where, "notes_fts MATCH ?") {
		t.Errorf("where = %q, want FTS match", p.Where)
	}
	if len(p.Args) != 1 || p.Args[0] != "grace" {
		t.Errorf("args = %v", p.Args)
	}
}

func TestBuildPlanFallbackEscapesWildcards(t *testing.T) {
	spec := DefaultSpec()
	spec.Text = `100%_done\`

	p := BuildPlan(spec, ModeFallback)
	want := `%100\%\_done\\%`
	if len(p.Args) != 2 || p.Args[0] != want || p.Args[1] != want {
		t.Errorf("args = %v, want both %q", p.Args, want)
	}
	if !strings.Contains(p.Where, "title LIKE ?") || !strings.Contains(p.Where, "content LIKE ?") {
		t.Errorf("where = %q", p.Where)
	}
}

func TestBuildPlanOrderClause(t *testing.T) {
	spec := DefaultSpec()
	p := BuildPlan(spec, ModeFallback)
	if p.Order != "created_at DESC, id ASC" {
		t.Errorf("order = %q", p.Order)
	}

	spec.SortField = SortTitle
	spec.SortOrder = SortAsc
	p = BuildPlan(spec, ModeFallback)
	if p.Order != "title ASC, id ASC" {
		t.Errorf("order = %q", p.Order)
	}
}

func TestBuildPlanFullTextKeepsSortClause(t *testing.T) {
	// Sort policy: the sort clause always applies; relevance never
	// reorders results, even with a text query and no explicit sort_by.
	spec := DefaultSpec()
	spec.Text = "grace"
	p := BuildPlan(spec, ModeFullText)
	if p.Order != "created_at DESC, id ASC" {
		t.Errorf("order = %q, want default sort in full-text mode", p.Order)
	}
}

func TestBuildPlanCombinedFilters(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	spec := DefaultSpec()
	spec.Type = models.TypePrayerRequest
	spec.DateFrom = &from
	spec.Text = "healing"

	p := BuildPlan(spec, ModeFallback)
	if got := strings.Count(p.Where, " AND "); got != 2 {
		t.Errorf("where = %q, want 3 conditions", p.Where)
	}
	if len(p.Args) != 4 { // type + date + two LIKE patterns
		t.Errorf("args = %v", p.Args)
	}
}
