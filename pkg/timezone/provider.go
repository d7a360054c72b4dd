package timezone

import (
	"time"

	// Embed the tzdata so lookups work in minimal containers without a
	// system zoneinfo directory.
	_ "time/tzdata"

	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/calendar"
)

// LocationProvider resolves identifiers against the IANA database via
// time.LoadLocation.
type LocationProvider struct{}

// ResolveZone loads the named location. The returned rule evaluates the
// offset in effect at a given local wall-clock value, so DST transitions are
// honored.
func (LocationProvider) ResolveZone(identifier string) (OffsetFunc, error) {
	loc, err := time.LoadLocation(identifier)
	if err != nil {
		return nil, &UnknownZoneError{Identifier: identifier}
	}

	return func(c calendar.Civil) time.Duration {
		_, offset := c.Time(loc).Zone()
		return time.Duration(offset) * time.Second
	}, nil
}
