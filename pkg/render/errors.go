package render

import (
	"fmt"
	"strings"
)

// MissingRequiredSectionError is returned when one or more mandatory sections
// have no supplied content at render time. Rendering produces no partial
// output in that case.
type MissingRequiredSectionError struct {
	// Keys lists the missing mandatory section keys in document order.
	Keys []string
}

func (e *MissingRequiredSectionError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("missing required section: %s", e.Keys[0])
	}
	return fmt.Sprintf("missing required sections: %s", strings.Join(e.Keys, ", "))
}

// IsMissingRequiredSection reports whether err is a MissingRequiredSectionError.
func IsMissingRequiredSection(err error) bool {
	_, ok := err.(*MissingRequiredSectionError)
	return ok
}
