package booking

import "time"

// The bookable day is a fixed grid of labeled slots. A slot holds at most
// one active booking per barber; there is no duration arithmetic.
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

func IsValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

const DateLayout = "2006-01-02"

func IsValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil && len(date) == len(DateLayout)
}
