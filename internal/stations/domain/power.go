package stations

import "fmt"

// PowerTier is one of the three fixed charging-power classes.
type PowerTier int

const (
	// TierHPC is high-power charging.
	TierHPC PowerTier = iota
	// TierDC is standard DC fast charging.
	TierDC
	// TierAC is the low-power tier.
	TierAC
)

// PowerTiers lists the tiers in draw order.
var PowerTiers = []PowerTier{TierHPC, TierDC, TierAC}

type tierProfile struct {
	code  string
	label string
	dc    int
	ac    int
}

var tierProfiles = map[PowerTier]tierProfile{
	TierHPC: {code: "HPC", label: "180 kW", dc: 6, ac: 8},
	TierDC:  {code: "DC", label: "150 kW", dc: 4, ac: 6},
	TierAC:  {code: "AC", label: "50 kW", dc: 2, ac: 4},
}

// IsValid reports whether the tier is known.
func (t PowerTier) IsValid() bool {
	_, ok := tierProfiles[t]
	return ok
}

// String returns the tier code (HPC, DC, AC).
func (t PowerTier) String() string {
	if p, ok := tierProfiles[t]; ok {
		return p.code
	}
	return fmt.Sprintf("PowerTier(%d)", int(t))
}

// Label returns the power rating label written to the dataset.
func (t PowerTier) Label() string {
	return tierProfiles[t].label
}

// DCSockets returns the DC socket count of the tier.
func (t PowerTier) DCSockets() int {
	return tierProfiles[t].dc
}

// ACSockets returns the AC socket count of the tier.
func (t PowerTier) ACSockets() int {
	return tierProfiles[t].ac
}

// TierForLabel resolves a power label back to its tier.
func TierForLabel(label string) (PowerTier, error) {
	for _, tier := range PowerTiers {
		if tierProfiles[tier].label == label {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPower, label)
}
