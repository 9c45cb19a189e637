package query

import "strings"

// Mode selects how the text filter is expressed.
type Mode int

// Execution modes.
const (
	// ModeFullText matches against the FTS5 index.
	ModeFullText Mode = iota
	// ModeFallback matches by escaped, case-insensitive substring
	// over title and content. Wildcard characters in the query are
	// treated literally.
	ModeFallback
)

// Plan is the fully-resolved filter/sort/pagination description ready
// to run against the store. Where and Args form the WHERE clause,
// Order the ORDER BY clause; Skip and Limit apply after both.
type Plan struct {
	Mode  Mode
	Where string
	Args  []any
	Order string
	Limit int
	Skip  int
}

// BuildPlan turns a Spec into a Plan for the given mode.
//
// An inverted date range (date_from after date_to) still builds a
// valid plan; it simply matches nothing.
//
// Sort policy: the (sort_field, sort_direction) clause always applies,
// in full-text mode too. Relevance never reorders results, so the
// same query always returns the same page regardless of which mode
// served it.
func BuildPlan(spec *Spec, mode Mode) *Plan {
	var conds []string
	var args []any

	if spec.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, string(spec.Type))
	}
	if spec.DateFrom != nil {
		conds = append(conds, "created_at >= ?")
		args = append(args, spec.DateFrom.UTC())
	}
	if spec.DateTo != nil {
		conds = append(conds, "created_at <= ?")
		args = append(args, spec.DateTo.UTC())
	}
	if spec.Text != "" {
		if mode == ModeFullText {
			conds = append(conds, "id IN (SELECT id FROM notes_fts WHERE notes_fts MATCH ?)")
			args = append(args, spec.Text)
		} else {
			pat := "%" + escapeLike(spec.Text) + "%"
			conds = append(conds, `(title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\')`)
			args = append(args, pat, pat)
		}
	}

	return &Plan{
		Mode:  mode,
		Where: strings.Join(conds, " AND "),
		Args:  args,
		Order: orderClause(spec),
		Limit: spec.Limit,
		Skip:  spec.Skip,
	}
}

// orderClause renders the sort. The id tiebreak keeps ordering stable
// when the sort key repeats, so pagination sweeps never duplicate or
// drop rows.
func orderClause(spec *Spec) string {
	dir := "DESC"
	if spec.SortOrder == SortAsc {
		dir = "ASC"
	}
	return string(spec.SortField) + " " + dir + ", id ASC"
}

// escapeLike backslash-escapes LIKE wildcards so user input matches
// literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
