// Package severity defines the three-tier urgency scale shared by every
// derived status on the board, and the badge variant each tier renders as.
package severity

import "fmt"

// Level is one of normal, warning, critical.
type Level string

const (
	Normal   Level = "normal"
	Warning  Level = "warning"
	Critical Level = "critical"
)

// Variant is the badge style a front-end should use.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantOutline     Variant = "outline"
	VariantDestructive Variant = "destructive"
)

func (l Level) Valid() bool {
	switch l {
	case Normal, Warning, Critical:
		return true
	}
	return false
}

// Variant maps critical to destructive, warning to default and normal to
// secondary.
func (l Level) Variant() Variant {
	switch l {
	case Critical:
		return VariantDestructive
	case Warning:
		return VariantDefault
	default:
		return VariantSecondary
	}
}

func (l *Level) UnmarshalText(b []byte) error {
	v := Level(b)
	if !v.Valid() {
		return fmt.Errorf("invalid severity: %s", b)
	}
	*l = v
	return nil
}
