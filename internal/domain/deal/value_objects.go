package deal

import "strings"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// IsZero reports the sentinel 0,0 used for non-physical deals.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// Location is a deal's physical address. Online and affiliate deals carry
// the "Online" sentinel with zero coordinates.
type Location struct {
	Address     string
	Coordinates Coordinates
}

const onlineAddress = "Online"

func OnlineLocation() Location {
	return Location{Address: onlineAddress}
}

func (l Location) IsPhysical() bool {
	return !strings.EqualFold(l.Address, onlineAddress) && !l.Coordinates.IsZero()
}

// PostedBy is a denormalized snapshot of the posting user, not a live
// relation. It stays as posted even if the user record changes.
type PostedBy struct {
	UserID string
	Name   string
	Avatar string
}
