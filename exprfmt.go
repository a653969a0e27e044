package gridpaint

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"
)

// programCacheSize bounds the compiled programs kept per formatter. Patterns
// come from cell data, so the set is open-ended.
const programCacheSize = 512

// ExprFormatter formats values with expr-lang expressions. A cell's
// FormatSpec.Pattern, when set and valid, is the expression; otherwise the
// formatter's own expression is used. Patterns that do not compile, such as
// Excel number format codes read from a workbook, fall back silently. The expression sees:
//
//	value, datatype, decimals (-1 when unset), percent, currency,
//	currencySymbol, pattern, sprintf(format, args...)
//
// and must evaluate to a string.
type ExprFormatter struct {
	expression string
	cache      *lru.Cache[string, *vm.Program]
}

// NewExprFormatter compiles expression up front so syntax errors surface at
// construction time.
func NewExprFormatter(expression string) (*ExprFormatter, error) {
	cache, err := lru.New[string, *vm.Program](programCacheSize)
	if err != nil {
		return nil, err
	}
	f := &ExprFormatter{expression: expression, cache: cache}
	if _, err := f.compile(expression); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *ExprFormatter) Format(value any, datatype Datatype, opts FormatOptions) (string, error) {
	expression := f.expression
	program, err := f.compile(expression)
	if err != nil {
		return "", err
	}
	if opts.Pattern != "" {
		if p, err := f.compile(opts.Pattern); err == nil {
			expression, program = opts.Pattern, p
		}
	}
	out, err := expr.Run(program, exprEnv(value, datatype, opts))
	if err != nil {
		return "", fmt.Errorf("evaluate format expression %q: %w", expression, err)
	}
	switch s := out.(type) {
	case string:
		return s, nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("format expression %q evaluated to %T, expected string", expression, out)
	}
}

// CheckPattern compiles pattern and caches the program.
func (f *ExprFormatter) CheckPattern(pattern string) error {
	_, err := f.compile(pattern)
	return err
}

func (f *ExprFormatter) compile(expression string) (*vm.Program, error) {
	if program, ok := f.cache.Get(expression); ok {
		return program, nil
	}
	program, err := expr.Compile(expression, expr.Env(exprEnv(nil, Text, FormatOptions{})))
	if err != nil {
		return nil, fmt.Errorf("compile format expression %q: %w", expression, err)
	}
	f.cache.Add(expression, program)
	return program, nil
}

func exprEnv(value any, datatype Datatype, opts FormatOptions) map[string]any {
	decimals := -1
	if opts.Decimals != nil {
		decimals = *opts.Decimals
	}
	return map[string]any{
		"value":          value,
		"datatype":       datatype.String(),
		"decimals":       decimals,
		"percent":        opts.Percent,
		"currency":       opts.Currency,
		"currencySymbol": opts.CurrencySymbol,
		"pattern":        opts.Pattern,
		"sprintf":        fmt.Sprintf,
	}
}
