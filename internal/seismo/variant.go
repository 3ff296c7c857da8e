package seismo

import (
	"fmt"
	"strings"
)

// Variant selects the physics applied each time step.
type Variant int

const (
	LCM Variant = iota
	TDSM
	TDSR
	Traditional
	CFM
	RSM
	RSD
)

var variantNames = [...]string{
	LCM:         "lcm",
	TDSM:        "tdsm",
	TDSR:        "tdsr",
	Traditional: "traditional",
	CFM:         "cfm",
	RSM:         "rsm",
	RSD:         "rsd",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// HasStateField reports whether the variant evolves a state field that can
// seed a later run.
func (v Variant) HasStateField() bool {
	return v == LCM || v == TDSM || v == TDSR
}

// Variants lists every implemented variant.
func Variants() []Variant {
	return []Variant{LCM, TDSM, TDSR, Traditional, CFM, RSM, RSD}
}

// ParseVariant maps a model name to its variant.
func ParseVariant(name string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range variantNames {
		if s == n {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnimplementedModel, name)
}
