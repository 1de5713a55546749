// Package clock provides the process wall clock. Token issuance and card
// timestamps take a clock so tests can substitute a manual one.
package clock

import "time"

// SystemClock reads the system time in UTC.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
