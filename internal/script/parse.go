// Package script parses list operation scripts from command-line tokens and
// runs them against one list variant.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/ownlists/pkg/types"
)

// Parse errors.
var (
	ErrUnknownOp  = errors.New("unknown operation")
	ErrMissingArg = errors.New("missing argument")
	ErrBadArg     = errors.New("argument is not an integer")
	ErrEmpty      = errors.New("script has no operations")
)

// Parse turns tokens such as ["push", "1", "push", "2", "pop"] into ops.
// Tokens are case-insensitive; "push=3" is accepted as shorthand.
func Parse(tokens []string) ([]types.Op, error) {
	var ops []types.Op
	for i := 0; i < len(tokens); i++ {
		tok := strings.ToLower(strings.TrimSpace(tokens[i]))
		if tok == "" {
			continue
		}
		name, inline, hasInline := strings.Cut(tok, "=")
		switch name {
		case types.OpPush:
			raw := inline
			if !hasInline {
				if i+1 >= len(tokens) {
					return nil, fmt.Errorf("token %d: push: %w", i+1, ErrMissingArg)
				}
				i++
				raw = tokens[i]
			}
			v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("token %d: push %q: %w", i+1, raw, ErrBadArg)
			}
			ops = append(ops, types.Op{Name: types.OpPush, Arg: v})
		case types.OpPop, types.OpPeek, types.OpLen, types.OpEmpty:
			if hasInline {
				return nil, fmt.Errorf("token %d: %s takes no argument: %w", i+1, name, ErrUnknownOp)
			}
			ops = append(ops, types.Op{Name: name})
		default:
			return nil, fmt.Errorf("token %d: %q: %w", i+1, tok, ErrUnknownOp)
		}
	}
	if len(ops) == 0 {
		return nil, ErrEmpty
	}
	return ops, nil
}

// Format renders ops back into a single script line.
func Format(ops []types.Op) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}
