package stations

// StationType is the site category of a station.
type StationType string

const (
	TypeMall    StationType = "mall"
	TypeCity    StationType = "city"
	TypeHighway StationType = "highway"
)

// StationTypes lists the categories in draw order.
var StationTypes = []StationType{TypeMall, TypeCity, TypeHighway}

// IsValid reports whether the type is one of the fixed categories.
func (t StationType) IsValid() bool {
	switch t {
	case TypeMall, TypeCity, TypeHighway:
		return true
	default:
		return false
	}
}
