package sdk

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-bexpr"
)

// FilterFields maps record field names to the values a filter must match.
type FilterFields map[string]any

// BuildBexprFilter builds a bexpr AND filter from the provided fields, sorted by name.
// Strings are quoted, booleans and integers are emitted verbatim.
// When fields is empty an empty string is returned.
func BuildBexprFilter(fields FilterFields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	expressions := make([]string, 0, len(keys))
	for _, key := range keys {
		expressions = append(expressions, fmt.Sprintf("%s == %s", key, formatBexprValue(fields[key])))
	}
	return strings.Join(expressions, " and ")
}

// matcher evaluates a compiled bexpr expression against a field map.
type matcher struct {
	eval *bexpr.Evaluator
}

// filterCache holds compiled evaluators keyed by expression.
var filterCache = &sync.Map{}

func compileFilter(expr string) (*matcher, error) {
	if cached, ok := filterCache.Load(expr); ok {
		return cached.(*matcher), nil
	}
	eval, err := bexpr.CreateEvaluator(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
	}
	m := &matcher{eval: eval}
	filterCache.Store(expr, m)
	return m, nil
}

// match reports whether fields satisfies the expression. Evaluation errors
// (for example a field missing from the map) count as a non-match.
func (m *matcher) match(fields map[string]any) bool {
	ok, err := m.eval.Evaluate(fields)
	return err == nil && ok
}

// formatBexprValue renders a filter value: integers and booleans verbatim,
// everything else (strings, CourseStatus) as a quoted string.
func formatBexprValue(value any) string {
	switch v := value.(type) {
	case int, int64:
		return fmt.Sprintf("%d", v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strconv.Quote(fmt.Sprint(v))
	}
}
