package stations

import (
	"fmt"
	"strings"
)

const nameSeparator = " - "

// LocationName returns the display name of the n-th station at a base location.
// The first copy keeps the base name.
func LocationName(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s %d. İstasyon", base, n)
}

// ComposeName builds "city - district - location", dropping an empty district.
func ComposeName(city, district, location string) string {
	if district == "" {
		return city + nameSeparator + location
	}
	return city + nameSeparator + district + nameSeparator + location
}

// ComposeAddress builds "location, district, city", dropping an empty district.
func ComposeAddress(city, district, location string) string {
	if district == "" {
		return location + ", " + city
	}
	return location + ", " + district + ", " + city
}

// FallbackName names the n-th station of a city without a base-location table.
func FallbackName(city string, n int) string {
	return fmt.Sprintf("%s%s%d. Şarj İstasyonu", city, nameSeparator, n)
}

// FallbackAddress is the address of stations in cities without a base-location table.
func FallbackAddress(city string) string {
	return city + " Merkez"
}

// CityOf returns the city segment of a composed station name.
func CityOf(name string) string {
	city, _, _ := strings.Cut(name, nameSeparator)
	return city
}

// NameSegment returns the i-th " - " separated segment of name and whether it exists.
func NameSegment(name string, i int) (string, bool) {
	parts := strings.Split(name, nameSeparator)
	if i < 0 || i >= len(parts) {
		return "", false
	}
	return parts[i], true
}
