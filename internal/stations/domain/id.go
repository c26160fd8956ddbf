package stations

import (
	"fmt"
	"strconv"
	"strings"
)

// IDPrefix prefixes every station identifier.
const IDPrefix = "ZES"

// FormatID builds the identifier of the seq-th station (1-based).
func FormatID(seq int) string {
	return fmt.Sprintf("%s%04d", IDPrefix, seq)
}

// ParseID returns the sequence number encoded in id.
func ParseID(id string) (int, error) {
	digits, ok := strings.CutPrefix(id, IDPrefix)
	if !ok || len(digits) < 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	seq, err := strconv.Atoi(digits)
	if err != nil || seq <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return seq, nil
}
