package store

import "time"

// DateLayout is the format used for sale dates.
const DateLayout = "2006-01-02"

// Clock supplies the wall time stamped onto sale records. The interactive
// app uses SystemClock; tests inject a fixed clock for deterministic dates.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
