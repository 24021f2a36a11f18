package enums

// PrepTimeChoices are the preparation-time options the console offers when
// accepting an order, in minutes.
var PrepTimeChoices = []int{20, 25, 30, 40, 45}

// DefaultPrepMinutes is applied when the vendor accepts without picking a time.
const DefaultPrepMinutes = 20

// IsValidPrepMinutes reports whether the value is one of the offered choices.
func IsValidPrepMinutes(minutes int) bool {
	for _, choice := range PrepTimeChoices {
		if choice == minutes {
			return true
		}
	}
	return false
}
