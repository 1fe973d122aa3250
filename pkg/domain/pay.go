package domain

// Pay amounts by employment status.
const (
	PayDeceased  float64 = 1500
	PaySeparated float64 = 2500
	PayRetired   float64 = 3000
	PayStandard  float64 = 4000
)

// PayStatus describes the employment flags that select a pay amount.
type PayStatus struct {
	Dead      bool
	Separated bool
	Retired   bool
}

// DefaultPayStatus returns the status assumed when no flags are supplied.
func DefaultPayStatus() PayStatus {
	return PayStatus{Separated: true}
}

// PayAmount returns the amount for the first matching flag in the order
// dead, separated, retired.
func PayAmount(status PayStatus) float64 {
	if status.Dead {
		return PayDeceased
	}
	if status.Separated {
		return PaySeparated
	}
	if status.Retired {
		return PayRetired
	}
	return PayStandard
}
