// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import "fmt"

// EnergyUnit names one of the energy units the energy traversal model's
// accumulated "energy" feature may be expressed in. The canonical/base
// unit is KilowattHours, matching RouteE-style powertrain models.
type EnergyUnit uint8

const (
	KilowattHours EnergyUnit = iota
	MegaJoules
	GallonsGasolineEquivalent
)

func (u EnergyUnit) String() string {
	switch u {
	case KilowattHours:
		return "kWh"
	case MegaJoules:
		return "MJ"
	case GallonsGasolineEquivalent:
		return "GGE"
	default:
		return fmt.Sprintf("EnergyUnit(%d)", uint8(u))
	}
}

// perKWh converts one kilowatt-hour into u.
func (u EnergyUnit) perKWh() float64 {
	switch u {
	case MegaJoules:
		return 3.6
	case GallonsGasolineEquivalent:
		return 1.0 / 33.7
	default:
		return 1
	}
}

// Energy is a scalar quantity of consumed energy, stored internally in
// kilowatt-hours regardless of the unit it was constructed from.
type Energy float64

// ZeroEnergy is the additive identity for Energy.
const ZeroEnergy Energy = 0

// NewEnergy builds an Energy from a value expressed in u.
func NewEnergy(value float64, u EnergyUnit) Energy {
	return Energy(value / u.perKWh())
}

// Value returns the energy in its canonical unit (kWh).
func (e Energy) Value() float64 { return float64(e) }

// In returns e expressed as a plain float64 in unit u.
func (e Energy) In(u EnergyUnit) float64 {
	return float64(e) * u.perKWh()
}

// Kind reports the dimension tag for Energy.
func (Energy) Kind() Kind { return KindEnergy }

// EnergyRateUnit names the unit an energy-rate predictor reports in:
// energy consumed per unit distance travelled. The canonical/base unit
// is KilowattHours per kilometer.
type EnergyRateUnit uint8

const (
	KWhPerKilometer EnergyRateUnit = iota
	KWhPerMile
)

func (u EnergyRateUnit) String() string {
	switch u {
	case KWhPerMile:
		return "kWh/mi"
	default:
		return "kWh/km"
	}
}

// perKWhPerKm converts one kWh/km into u.
func (u EnergyRateUnit) perKWhPerKm() float64 {
	switch u {
	case KWhPerMile:
		return 1 / 0.621371
	default:
		return 1
	}
}

// EnergyRate is a scalar energy-consumption rate (energy per unit
// distance), stored internally in kWh/km.
type EnergyRate float64

// NewEnergyRate builds an EnergyRate from a value expressed in u.
func NewEnergyRate(value float64, u EnergyRateUnit) EnergyRate {
	return EnergyRate(value / u.perKWhPerKm())
}

// Value returns the rate in its canonical unit (kWh/km).
func (r EnergyRate) Value() float64 { return float64(r) }

// Energy computes the energy consumed travelling dist at this rate.
func (r EnergyRate) Energy(dist Distance) Energy {
	return Energy(r.Value() * dist.Value())
}
