package services

import "errors"

var (
	ErrNoPromoCode      = errors.New("no promo code entered")
	ErrInvalidPromoCode = errors.New("invalid promo code")
)

// Fixed promo table, evaluated synchronously; nothing is persisted.
var promoCodes = map[string]int{
	"DISCOUNT10": 10,
}

// EvaluatePromo resolves a code to its discount percent. An empty code and an
// unknown code both carry a zero discount, but callers need to tell the two
// apart, so each gets its own error.
func EvaluatePromo(code string) (int, error) {
	if code == "" {
		return 0, ErrNoPromoCode
	}
	if pct, ok := promoCodes[code]; ok {
		return pct, nil
	}
	return 0, ErrInvalidPromoCode
}
