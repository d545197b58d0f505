// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import "fmt"

// TimeUnit names one of the time units search results and the state
// schema may report elapsed travel time in. The canonical/base unit is
// Seconds.
type TimeUnit uint8

const (
	Seconds TimeUnit = iota
	Hours
	Milliseconds
)

func (u TimeUnit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Hours:
		return "hours"
	case Milliseconds:
		return "milliseconds"
	default:
		return fmt.Sprintf("TimeUnit(%d)", uint8(u))
	}
}

// perSecond converts one second into u.
func (u TimeUnit) perSecond() float64 {
	switch u {
	case Hours:
		return 1.0 / 3600.0
	case Milliseconds:
		return 1000
	default:
		return 1
	}
}

// Time is a scalar quantity of elapsed travel time, stored internally in
// seconds regardless of the unit it was constructed from. It is named
// Time rather than Duration to match the state feature family
// (Distance/Time/Energy) the spec names, not time-of-day.
type Time float64

// ZeroTime is the additive identity for Time.
const ZeroTime Time = 0

// NewTime builds a Time from a value expressed in u.
func NewTime(value float64, u TimeUnit) Time {
	return Time(value / u.perSecond())
}

// Value returns the time in its canonical unit (seconds).
func (t Time) Value() float64 { return float64(t) }

// In returns t expressed as a plain float64 in unit u.
func (t Time) In(u TimeUnit) float64 {
	return float64(t) * u.perSecond()
}

// Kind reports the dimension tag for Time.
func (Time) Kind() Kind { return KindTime }

// TravelTime computes the time to cross dist at speed, in the canonical
// units of both (kilometers and kilometers-per-hour), returned as a
// canonical Time (seconds). distance/speed in kilometers and kph gives
// hours; the 3600 factor converts to the canonical seconds base.
func TravelTime(dist Distance, speed Speed) Time {
	if speed.Value() <= 0 {
		return Time(0)
	}
	hours := dist.Value() / speed.Value()
	return Time(hours * 3600)
}
