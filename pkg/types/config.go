package types

import "errors"

// Variant names, one per list package.
const (
	VariantValue    = "value"    // pkg/valuelist
	VariantBorrowed = "borrowed" // pkg/borrowlist
	VariantCell     = "cell"     // pkg/celllist
	VariantOwned    = "owned"    // pkg/ownedlist
)

// Variants lists every recognised variant name in a stable order.
var Variants = []string{VariantValue, VariantBorrowed, VariantCell, VariantOwned}

// Config holds the CLI settings loaded from config.yaml.
type Config struct {
	Variant string `json:"variant" yaml:"variant"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	Journal bool   `json:"journal" yaml:"journal"`
}

// Config validation errors.
var (
	ErrVariantEmpty   = errors.New("variant must not be empty")
	ErrVariantUnknown = errors.New("unknown variant")
)

// ValidateVariant checks that name is one of Variants.
func ValidateVariant(name string) error {
	if name == "" {
		return ErrVariantEmpty
	}
	for _, v := range Variants {
		if v == name {
			return nil
		}
	}
	return ErrVariantUnknown
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	return ValidateVariant(c.Variant)
}
