package filter

import (
	"errors"
	"maps"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
)

// DefaultCacheSize is the number of compiled filters kept by NewCompiler
const DefaultCacheSize = 64

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache sets the number of compiled filters to keep. Zero disables caching.
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[*Filter](size)
		} else {
			c.cache = nil
		}
	}
}

// WithCustomFunctions adds helper functions available to every expression
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// Compiler turns expressions into filters. It is safe for concurrent use.
type Compiler struct {
	helpers map[string]any
	cache   *lruCache[*Filter]
	envPool *sync.Pool
}

// NewCompiler creates a compiler with the default helpers and cache
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helpers: helperFunctions(),
		cache:   newLRUCache[*Filter](DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.envPool = &sync.Pool{
		New: func() any {
			return make(map[string]any, len(c.helpers)+len(pageFields))
		},
	}
	return c
}

// Compile compiles an expression, returning a cached filter when the same
// expression was compiled before
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     ErrEmptyExpression.Error(),
			Position:   -1,
			Err:        ErrEmptyExpression,
		}
	}

	if c.cache != nil {
		if f, ok := c.cache.Get(expression); ok {
			return f, nil
		}
	}

	// Type-check against a zero page so unknown fields fail here, not per page
	env := c.environment(pageEnv{})
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		ce := &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
			Position:   -1,
			Err:        err,
		}
		var fe *file.Error
		if errors.As(err, &fe) {
			ce.Reason = fe.Message
			ce.Position = fe.Column
		}
		return nil, ce
	}

	f := &Filter{expression: expression, program: program, compiler: c}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

func (c *Compiler) environment(p pageEnv) map[string]any {
	env := make(map[string]any, len(c.helpers)+len(pageFields))
	c.fill(env, p)
	return env
}

func (c *Compiler) fill(env map[string]any, p pageEnv) {
	maps.Copy(env, c.helpers)
	p.put(env)
}

func (c *Compiler) acquire(p pageEnv) map[string]any {
	env := c.envPool.Get().(map[string]any)
	c.fill(env, p)
	return env
}

func (c *Compiler) release(env map[string]any) {
	clear(env)
	c.envPool.Put(env)
}

func helperFunctions() map[string]any {
	return map[string]any{
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
