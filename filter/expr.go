package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/abjc/jellyfin"
)

// exprFilter implements Filter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	extra      map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[Filter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.custom, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{custom: make(map[string]any)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type exprCompiler struct {
	custom map[string]any
	cache  *lruCache[Filter]
}

// Compile type-checks the expression against the item environment, so
// unknown fields and non-boolean results are rejected here rather than
// per item.
func (c *exprCompiler) Compile(expression string) (Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnvironment(jellyfin.Item{}, c.custom)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{expression: expression, program: program, extra: c.custom}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Match evaluates the filter against an item
func (f *exprFilter) Match(item jellyfin.Item) (bool, error) {
	result, err := expr.Run(f.program, newEnvironment(item, f.extra))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemID:     item.ID,
			ItemName:   item.Name,
			Err:        err,
		}
	}
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// newEnvironment exposes an item's fields and the helper functions to an
// expression.
func newEnvironment(item jellyfin.Item, extra map[string]any) map[string]any {
	env := make(map[string]any, 48)
	addHelperFunctions(env)

	env["Name"] = item.Name
	env["OriginalTitle"] = item.OriginalTitle
	env["Type"] = item.Type
	env["Year"] = item.ProductionYear
	env["Genres"] = item.Genres
	env["Overview"] = item.Overview
	env["Rating"] = item.CommunityRating
	env["CriticRating"] = item.CriticRating
	env["OfficialRating"] = item.OfficialRating
	env["RuntimeMinutes"] = item.RuntimeMinutes()
	env["SeriesName"] = item.SeriesName
	env["Season"] = item.ParentIndexNumber
	env["Episode"] = item.IndexNumber
	env["Added"] = timeOrZero(item.DateCreated)
	env["Premiered"] = timeOrZero(item.PremiereDate)

	var userData jellyfin.UserData
	if item.UserData != nil {
		userData = *item.UserData
	}
	env["Played"] = userData.Played
	env["Favorite"] = userData.IsFavorite
	env["PlayCount"] = userData.PlayCount
	env["Progress"] = userData.PlayedPercentage
	env["LastPlayed"] = timeOrZero(userData.LastPlayedDate)

	env["hasGenre"] = hasGenreFunc(item.Genres)

	maps.Copy(env, extra)
	return env
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func hasGenreFunc(genres []string) func(string) bool {
	lowered := make([]string, len(genres))
	for i, g := range genres {
		lowered[i] = strings.ToLower(g)
	}
	return func(genre string) bool {
		return slices.Contains(lowered, strings.ToLower(genre))
	}
}

// addHelperFunctions adds the item-independent helpers
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}
