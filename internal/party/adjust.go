package party

import "fmt"

const (
	emptyBonus     = 5
	classyPenalty  = 2
	chillThreshold = 5
)

// Messages shown for each branch of the adjustment rule.
const (
	MessageEpic   = "Epic Party Incoming!"
	MessageClassy = "Let's keep it classy!"
	MessageChill  = "Chill vibes only!"
)

// Adjustment identifies which branch of the adjustment rule fired.
type Adjustment string

const (
	AdjustAdd      Adjustment = "add"
	AdjustSubtract Adjustment = "subtract"
	AdjustNone     Adjustment = "unchanged"
)

// Adjust applies the adjustment rule to a base party code.
func Adjust(base int) (int, Adjustment, string) {
	switch {
	case base == 0:
		return base + emptyBonus, AdjustAdd, MessageEpic
	case base > chillThreshold:
		return base - classyPenalty, AdjustSubtract, MessageClassy
	default:
		return base, AdjustNone, MessageChill
	}
}

// Describe renders the adjustment the way both front ends display it,
// e.g. "0 + 5 = 5", "20 - 2 = 18" or "5 (unchanged)".
func (a Adjustment) Describe(base, final int) string {
	switch a {
	case AdjustAdd:
		return fmt.Sprintf("%d + %d = %d", base, emptyBonus, final)
	case AdjustSubtract:
		return fmt.Sprintf("%d - %d = %d", base, classyPenalty, final)
	default:
		return fmt.Sprintf("%d (unchanged)", base)
	}
}
