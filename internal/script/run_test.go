package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ownlists/pkg/types"
)

func mustParse(t *testing.T, tokens ...string) []types.Op {
	t.Helper()
	ops, err := Parse(tokens)
	require.NoError(t, err)
	return ops
}

func results(steps []types.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		if s.Failed() {
			out[i] = "err"
			continue
		}
		out[i] = s.Result
	}
	return out
}

func TestNewDriverUnknown(t *testing.T) {
	_, err := NewDriver("skip")
	assert.ErrorIs(t, err, types.ErrVariantUnknown)
}

func TestRunLIFOOnGrowableVariants(t *testing.T) {
	ops := mustParse(t,
		"push", "1", "push", "2", "push", "3",
		"peek", "len",
		"pop", "pop", "pop", "pop",
		"len", "empty",
	)
	want := []string{"", "", "", "3", "3", "3", "2", "1", "none", "0", "true"}

	for _, variant := range []string{types.VariantBorrowed, types.VariantCell, types.VariantOwned} {
		t.Run(variant, func(t *testing.T) {
			d, err := NewDriver(variant)
			require.NoError(t, err)

			steps := Run(d, ops, nil)
			require.Len(t, steps, len(ops))
			assert.Equal(t, want, results(steps))
			for i, s := range steps {
				assert.Equal(t, i+1, s.Seq)
			}
		})
	}
}

func TestRunValueVariantDepthLimit(t *testing.T) {
	d, err := NewDriver(types.VariantValue)
	require.NoError(t, err)

	steps := Run(d, mustParse(t, "push", "1", "push", "2", "peek", "len", "pop", "pop", "empty"), nil)

	assert.Equal(t, []string{"", "err", "1", "1", "1", "none", "true"}, results(steps))
	assert.Contains(t, steps[1].Error, ErrDepthExceeded.Error())
}

func TestRunValueVariantRefillsAfterPop(t *testing.T) {
	d, err := NewDriver(types.VariantValue)
	require.NoError(t, err)

	steps := Run(d, mustParse(t, "push", "1", "pop", "push", "2", "peek"), nil)
	assert.Equal(t, []string{"", "1", "", "2"}, results(steps))
}

func TestRunPopEmpty(t *testing.T) {
	for _, variant := range types.Variants {
		t.Run(variant, func(t *testing.T) {
			d, err := NewDriver(variant)
			require.NoError(t, err)

			steps := Run(d, mustParse(t, "pop", "pop", "peek", "empty"), nil)
			assert.Equal(t, []string{"none", "none", "none", "true"}, results(steps))
		})
	}
}
