package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty variant returns ErrVariantEmpty",
			config:  Config{Variant: "", DataDir: "/tmp/data"},
			wantErr: ErrVariantEmpty,
		},
		{
			name:    "unknown variant returns ErrVariantUnknown",
			config:  Config{Variant: "doubly"},
			wantErr: ErrVariantUnknown,
		},
		{
			name:   "owned is valid",
			config: Config{Variant: VariantOwned, Journal: true},
		},
		{
			name:   "value with empty DataDir is valid",
			config: Config{Variant: VariantValue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEveryVariantValidates(t *testing.T) {
	for _, v := range Variants {
		assert.NoError(t, ValidateVariant(v), v)
	}
}
