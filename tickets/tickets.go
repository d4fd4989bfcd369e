package tickets

// Accepted bill denominations. The ticket price equals the smallest bill,
// so a 25 needs no change, a 50 needs one 25 back, a 100 needs 75 back.
const (
	Bill25  = 25
	Bill50  = 50
	Bill100 = 100
)

// CanSellAll reports whether every buyer in the queue can be served in
// order with exact change, starting from an empty drawer. The queue slice
// is read only, never mutated.
func CanSellAll(bills []int) bool {
	var count25, count50 int
	for _, bill := range bills {
		switch bill {
		case Bill25:
			count25++
		case Bill50:
			if count25 == 0 {
				return false
			}
			count25--
			count50++
		case Bill100:
			// Prefer 50+25: 25s are the only change for a 50, so they
			// are the scarcer resource.
			switch {
			case count50 > 0 && count25 > 0:
				count50--
				count25--
			case count25 >= 3:
				count25 -= 3
			default:
				return false
			}
		default:
			return false
		}
	}

	return true
}
