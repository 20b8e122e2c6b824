package clock

import "time"

// Clock abstracts wall-clock time so elapsed-minute arithmetic stays
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now()
}
