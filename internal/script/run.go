package script

import (
	"log/slog"
	"strconv"

	"github.com/mesh-intelligence/ownlists/pkg/types"
)

// resultNone marks an explicit absence (pop or peek on an empty list).
const resultNone = "none"

// Run applies ops to d in order and returns one step per op. A failing op is
// recorded and the run continues with the next one.
func Run(d Driver, ops []types.Op, logger *slog.Logger) []types.Step {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	steps := make([]types.Step, 0, len(ops))
	for i, op := range ops {
		step := types.Step{Seq: i + 1, Op: op.Name, Arg: op.Arg}
		result, err := apply(d, op)
		if err != nil {
			step.Error = err.Error()
			logger.Warn("step failed", "seq", step.Seq, "op", op.String(), "err", err)
		} else {
			step.Result = result
			logger.Debug("step", "seq", step.Seq, "op", op.String(), "result", result)
		}
		steps = append(steps, step)
	}
	return steps
}

func apply(d Driver, op types.Op) (string, error) {
	switch op.Name {
	case types.OpPush:
		if err := d.Push(op.Arg); err != nil {
			return "", err
		}
		return "", nil
	case types.OpPop:
		return optional(d.Pop())
	case types.OpPeek:
		return optional(d.Peek())
	case types.OpLen:
		n, err := d.Len()
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case types.OpEmpty:
		return strconv.FormatBool(d.IsEmpty()), nil
	default:
		return "", ErrUnknownOp
	}
}

func optional(v int64, ok bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if !ok {
		return resultNone, nil
	}
	return strconv.FormatInt(v, 10), nil
}
