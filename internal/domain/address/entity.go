package address

// Address is an internship location. Coordinates are filled by a best-effort
// geocoding lookup at creation time and may stay null; rows are immutable
// once created.
type Address struct {
	ID           int64
	CEP          *string
	Street       string
	City         string
	State        string
	Number       *string
	Neighborhood *string
	Latitude     *float64
	Longitude    *float64
}

// HasCoordinates reports whether the address was successfully geocoded.
func (a Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
