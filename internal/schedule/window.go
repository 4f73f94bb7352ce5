package schedule

// Window defines the daily schedule: one-hour slots from OpenHour up to,
// but not including, CloseHour. The same window applies to every date and
// every court.
type Window struct {
	OpenHour  int
	CloseHour int // exclusive
}

// DefaultWindow matches the court's published hours, 08:00-22:00.
var DefaultWindow = Window{OpenHour: 8, CloseHour: 22}

// Hours returns the ordered start hours of every slot in the window.
func (w Window) Hours() []int {
	if w.CloseHour <= w.OpenHour {
		return nil
	}
	hours := make([]int, 0, w.CloseHour-w.OpenHour)
	for h := w.OpenHour; h < w.CloseHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
