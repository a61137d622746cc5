package fieldtype

import "fmt"

// Attachment describes a host-managed media item referenced by id from a
// gallery value.
type Attachment struct {
	ID       int64
	MIMEType string
	FileName string
	URL      string
}

// MediaResolver is the host lookup the gallery type uses to inspect
// attachment ids during validation and display. The call is synchronous;
// an error means the id does not resolve to a usable attachment.
type MediaResolver interface {
	Lookup(id int64) (Attachment, error)
}

// MapResolver is an in-memory MediaResolver backed by a plain map. It serves
// tests and hosts that preload their media index.
type MapResolver map[int64]Attachment

// Lookup implements MediaResolver.
func (m MapResolver) Lookup(id int64) (Attachment, error) {
	a, ok := m[id]
	if !ok {
		return Attachment{}, fmt.Errorf("attachment %d not found", id)
	}
	return a, nil
}
