package tracker

import "sync/atomic"

var current atomic.Pointer[Service]

// SetCurrent registers the process-wide tracker returned by Current.
func SetCurrent(s Service) {
	if s == nil {
		current.Store(nil)
		return
	}
	current.Store(&s)
}

// Current returns the tracker registered with SetCurrent, or nil.
func Current() Service {
	p := current.Load()
	if p == nil {
		return nil
	}
	return *p
}
