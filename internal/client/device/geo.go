// Package device holds the environment collaborators the client consumes:
// a geolocation provider and a screen-size classifier. Both are simple
// function-call interfaces with no internal state machine.
package device

import (
	"context"
	"errors"
)

// ErrLocationUnavailable is returned when the platform cannot produce a
// position (no provider, permission denied, or lookup failure).
var ErrLocationUnavailable = errors.New("location unavailable")

// Position is a WGS84 coordinate pair.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Geolocator resolves the device's current position.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// StaticGeolocator returns a fixed position, for configuration-driven or
// test setups.
type StaticGeolocator struct {
	Pos Position
}

func (g StaticGeolocator) CurrentPosition(ctx context.Context) (Position, error) {
	return g.Pos, nil
}

// NoGeolocator always reports the location as unavailable. It is the
// default for the terminal client, which has no position source.
type NoGeolocator struct{}

func (NoGeolocator) CurrentPosition(ctx context.Context) (Position, error) {
	return Position{}, ErrLocationUnavailable
}
