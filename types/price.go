package types

// PriceSnapshot is the share/base exchange rate at one point in time.
type PriceSnapshot struct {
	// Fixed is the rate scaled by the module's fixed-point price scale,
	// floored. Integer consumers settle against this value.
	Fixed uint64 `json:"fixed"`
	// Display is the rate rendered as a decimal string for humans. It is
	// computed with floating-point division and carries no settlement
	// guarantees.
	Display string `json:"display"`
}
