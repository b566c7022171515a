package dispatch

import (
	"strings"

	"github.com/google/uuid"
)

// canonicalID accepts the forms uuid.Parse does (braced, urn:uuid:, upper
// case) and returns the lower-case hyphenated form stored in the database.
func canonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func canonicalPackageIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrNoPackages
	}

	canonical := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, raw := range ids {
		id, ok := canonicalID(raw)
		if !ok {
			return nil, ErrInvalidPackageID
		}
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicatePackageID
		}
		seen[id] = struct{}{}
		canonical = append(canonical, id)
	}
	return canonical, nil
}
