package engine

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/anyventure/companion-api/internal/entities"
)

// FilterAll disables a categorical filter
const FilterAll = "all"

// FieldSubschool is the categorical field checked by the exotic gate
const FieldSubschool = "subschool"

// Record is a browsable catalog entry. Its GetID keys the known-first sort.
type Record interface {
	core.Entity
	GetName() string
	GetDescription() string
	// Field returns a categorical field. Unknown keys report false.
	Field(key string) (string, bool)
}

// Valuer is implemented by records that expose typed fields to filter expressions
type Valuer interface {
	FilterValue(key string) (any, bool)
}

// SortKey orders records by one categorical field.
// Rank, when set, replaces alphabetical order; unranked values sort last.
type SortKey struct {
	Field   string
	Desc    bool
	Numeric bool
	Rank    map[string]int
}

// Query is the browsing state applied to a record list
type Query struct {
	SearchTerm string
	// Filters maps a field to the value it must equal. "all" and "" are ignored.
	Filters map[string]string
	// GateExotic hides exotic subschools not unlocked in ExoticAccess.
	GateExotic   bool
	ExoticAccess map[string]bool
	// Known, when non-nil, sorts records whose ID it contains first.
	Known    map[string]bool
	SortKeys []SortKey
	// Expression is a checked filter expression; records failing evaluation are dropped.
	Expression *expr.Expr
}

// FilterRecords narrows records by q and returns them sorted.
// The input slice is not modified and the result is never nil.
func FilterRecords[R Record](records []R, q Query) []R {
	term := strings.ToLower(strings.TrimSpace(q.SearchTerm))

	out := make([]R, 0, len(records))
	for _, r := range records {
		if q.GateExotic && !exoticVisible(r, q.ExoticAccess) {
			continue
		}
		if !matchesFilters(r, q.Filters) {
			continue
		}
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		if q.Expression != nil && !matchesExpression(r, q.Expression) {
			continue
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, func(a, b R) int {
		return compareRecords(a, b, q)
	})
	return out
}

func exoticVisible(r Record, access map[string]bool) bool {
	subschool, ok := r.Field(FieldSubschool)
	if !ok || !entities.IsExoticSchool(subschool) {
		return true
	}
	return access[subschool]
}

func matchesFilters(r Record, filters map[string]string) bool {
	for key, want := range filters {
		if want == "" || want == FilterAll {
			continue
		}
		got, ok := r.Field(key)
		if !ok {
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}

func matchesSearch(r Record, term string) bool {
	return strings.Contains(strings.ToLower(r.GetName()), term) ||
		strings.Contains(strings.ToLower(r.GetDescription()), term)
}

func matchesExpression(r Record, e *expr.Expr) bool {
	ok, err := Evaluate(e, resolverFor(r))
	return err == nil && ok
}

func resolverFor(r Record) Resolver {
	if v, ok := r.(Valuer); ok {
		return v.FilterValue
	}
	return func(name string) (any, bool) {
		return r.Field(name)
	}
}

func compareRecords[R Record](a, b R, q Query) int {
	if q.Known != nil {
		ka, kb := q.Known[a.GetID()], q.Known[b.GetID()]
		if ka != kb {
			if ka {
				return -1
			}
			return 1
		}
	}

	for _, key := range q.SortKeys {
		if c := compareField(a, b, key); c != 0 {
			return c
		}
	}

	return compareNames(a.GetName(), b.GetName())
}

func compareField(a, b Record, key SortKey) int {
	av, _ := a.Field(key.Field)
	bv, _ := b.Field(key.Field)

	var c int
	switch {
	case key.Rank != nil:
		c = cmp.Compare(rankOf(key.Rank, av), rankOf(key.Rank, bv))
	case key.Numeric:
		ai, _ := strconv.Atoi(av)
		bi, _ := strconv.Atoi(bv)
		c = cmp.Compare(ai, bi)
	default:
		c = strings.Compare(av, bv)
	}

	if key.Desc {
		return -c
	}
	return c
}

func rankOf(rank map[string]int, value string) int {
	if r, ok := rank[value]; ok {
		return r
	}
	return len(rank)
}

func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
