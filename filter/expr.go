package filter

import (
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/reelscout/omdb"
)

// Env is what a refine expression sees for one title
type Env struct {
	Title   string
	Year    int
	Rating  float64
	Type    string
	Runtime string
	Country string
	Genres  []string
	Seasons int
	IMDbID  string

	HasGenre   func(string) bool         `expr:"hasGenre"`
	Contains   func(string, string) bool `expr:"contains"`
	StartsWith func(string, string) bool `expr:"startsWith"`
	Lower      func(string) string       `expr:"lower"`
}

// NewEnv builds the expression environment for a detailed title
func NewEnv(m omdb.Movie) Env {
	genres := m.Genres()
	lowerGenres := make([]string, len(genres))
	for i, g := range genres {
		lowerGenres[i] = strings.ToLower(g)
	}

	return Env{
		Title:   m.Title,
		Year:    m.StartYear(),
		Rating:  m.Rating(),
		Type:    m.Type,
		Runtime: m.Runtime,
		Country: m.Country,
		Genres:  genres,
		Seasons: m.Seasons(),
		IMDbID:  m.IMDbID,

		HasGenre: func(g string) bool {
			return slices.Contains(lowerGenres, strings.ToLower(g))
		},
		Contains: func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		StartsWith: func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		Lower: strings.ToLower,
	}
}

// Expression is a compiled refine expression, safe for concurrent use
type Expression struct {
	source  string
	program *vm.Program
}

// String returns the source text
func (e *Expression) String() string {
	return e.source
}

// Match evaluates the expression for a title
func (e *Expression) Match(m omdb.Movie) (bool, error) {
	out, err := expr.Run(e.program, NewEnv(m))
	if err != nil {
		return false, &EvaluationError{Expression: e.source, Title: m.Title, Err: err}
	}
	return out.(bool), nil
}

// Compiler compiles refine expressions, caching by source text
type Compiler struct {
	cache *lruCache[*Expression]
}

// NewCompiler creates a compiler; cacheSize <= 0 disables caching
func NewCompiler(cacheSize int) *Compiler {
	c := &Compiler{}
	if cacheSize > 0 {
		c.cache = newLRUCache[*Expression](cacheSize)
	}
	return c
}

// Compile type-checks an expression against Env and requires a boolean result
func (c *Compiler) Compile(source string) (*Expression, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, &CompilationError{Expression: source, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(source); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(source, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, &CompilationError{
			Expression: source,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	compiled := &Expression{source: source, program: program}
	if c.cache != nil {
		c.cache.Put(source, compiled)
	}
	return compiled, nil
}

// Refine keeps the titles the expression matches. Titles that fail to
// evaluate are dropped and their errors returned alongside.
func Refine(e *Expression, movies []omdb.Movie) ([]omdb.Movie, []error) {
	kept := make([]omdb.Movie, 0, len(movies))
	var errs []error
	for _, m := range movies {
		ok, err := e.Match(m)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			kept = append(kept, m)
		}
	}
	return kept, errs
}
