package present

import "github.com/jask/samtui/internal/counter"

// CounterView is the display-ready projection of a counter snapshot.
type CounterView struct {
	Count        int
	ErrorMessage string
}

// Counter projects snap for display.
func Counter(snap counter.Snapshot) CounterView {
	return CounterView{
		Count:        snap.Count,
		ErrorMessage: ErrorMessage(snap.Err),
	}
}
