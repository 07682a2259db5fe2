// internal/invoice/money.go
package invoice

import (
	"fmt"
	"strconv"
	"strings"
)

// Paise is a rupee amount in integer paise. All tax math runs on this type
// so repeated recomputation never accumulates float error.
type Paise int64

// ParseRupees parses a decimal rupee string ("120000", "8.5") into paise.
// Malformed or negative input coerces to zero: the calculator is total and
// validation is a separate concern.
func ParseRupees(s string) Paise {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	n, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return Paise(n)
}

// String renders the amount with exactly two decimal places.
func (p Paise) String() string {
	return fmt.Sprintf("%d.%02d", p/100, p%100)
}

// MarshalJSON renders the fixed-2-decimal form as a JSON string so wire
// output never depends on float formatting.
func (p Paise) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// applyBasisPoints returns p scaled by bp/10000, rounded half up.
func applyBasisPoints(p Paise, bp int64) Paise {
	return Paise((int64(p)*bp + 5000) / 10000)
}
