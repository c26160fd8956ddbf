package stations

import "fmt"

// StatusActive is the only status generated stations carry.
const StatusActive = "active"

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Station is one generated charging station record.
type Station struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	DCSockets   int         `json:"dcSockets"`
	ACSockets   int         `json:"acSockets"`
	Power       string      `json:"power"`
	Status      string      `json:"status"`
	Type        StationType `json:"type"`
}

// City returns the city segment of the station name.
func (s Station) City() string {
	return CityOf(s.Name)
}

// Validate checks record invariants.
func (s Station) Validate() error {
	if _, err := ParseID(s.ID); err != nil {
		return err
	}
	if s.Name == "" {
		return ErrEmptyName
	}
	tier, err := TierForLabel(s.Power)
	if err != nil {
		return err
	}
	if s.DCSockets != tier.DCSockets() || s.ACSockets != tier.ACSockets() {
		return fmt.Errorf("%w: %s has %d DC/%d AC for %s", ErrSocketMismatch, s.ID, s.DCSockets, s.ACSockets, s.Power)
	}
	if s.Status != StatusActive {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, s.Status)
	}
	if !s.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStationType, s.Type)
	}
	return nil
}
