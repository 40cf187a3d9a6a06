package shipment

import (
	"fmt"

	"parcelops/internal/pkg/errs"
)

// Zone classifies the geographic reach of a shipment.
type Zone string

const (
	ZoneNational      Zone = "NATIONAL"
	ZoneInternational Zone = "INTERNATIONAL"
)

// ZoneFromString parses a wire or database value into a Zone.
func ZoneFromString(s string) (Zone, error) {
	zone := Zone(s)
	if err := zone.Validate(); err != nil {
		return "", err
	}
	return zone, nil
}

// Validate checks membership in the zone vocabulary.
func (z Zone) Validate() error {
	switch z {
	case ZoneNational, ZoneInternational:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"zone",
			fmt.Errorf("%q is not a valid shipment zone", string(z)),
		)
	}
}

func (z Zone) String() string {
	return string(z)
}

// Speed is the delivery service level.
type Speed string

const (
	SpeedNormal  Speed = "NORMAL"
	SpeedExpress Speed = "EXPRESS"
)

// SpeedFromString parses a wire or database value into a Speed.
func SpeedFromString(s string) (Speed, error) {
	speed := Speed(s)
	if err := speed.Validate(); err != nil {
		return "", err
	}
	return speed, nil
}

// Validate checks membership in the speed vocabulary.
func (s Speed) Validate() error {
	switch s {
	case SpeedNormal, SpeedExpress:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"speed",
			fmt.Errorf("%q is not a valid shipment speed", string(s)),
		)
	}
}

func (s Speed) String() string {
	return string(s)
}
