package engine

import "fmt"

// SilverPerGold is the exchange rate of stored item value
const SilverPerGold = 10

// FormatGoldDisplay renders a silver amount as gold and silver, e.g. "1 gold, 5 silver"
func FormatGoldDisplay(value int) string {
	value = max(value, 0)
	gold := value / SilverPerGold
	silver := value % SilverPerGold

	switch {
	case gold == 0 && silver == 0:
		return "Free"
	case gold == 0:
		return fmt.Sprintf("%d silver", silver)
	case silver == 0:
		return fmt.Sprintf("%d gold", gold)
	default:
		return fmt.Sprintf("%d gold, %d silver", gold, silver)
	}
}
