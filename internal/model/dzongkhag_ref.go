package model

import "encoding/json"

// UnknownName is shown when a reference cannot be resolved locally.
const UnknownName = "Unknown"

// DzongkhagRef is a tagged union: the backend returns either a bare object
// id or the embedded dzongkhag document, depending on whether the endpoint
// populates the relation. ID is always set once unmarshalled; Embedded only
// for the populated form.
type DzongkhagRef struct {
	ID       string
	Embedded *Dzongkhag
}

// Ref builds a bare reference.
func Ref(id string) DzongkhagRef { return DzongkhagRef{ID: id} }

// EmbeddedRef builds a populated reference.
func EmbeddedRef(d Dzongkhag) DzongkhagRef {
	return DzongkhagRef{ID: d.ID, Embedded: &d}
}

func (r DzongkhagRef) IsEmbedded() bool { return r.Embedded != nil }

func (r *DzongkhagRef) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*r = DzongkhagRef{}
		return nil
	}
	if b[0] == '"' {
		r.Embedded = nil
		return json.Unmarshal(b, &r.ID)
	}
	var d Dzongkhag
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	r.ID = d.ID
	r.Embedded = &d
	return nil
}

func (r DzongkhagRef) MarshalJSON() ([]byte, error) {
	if r.Embedded != nil {
		return json.Marshal(r.Embedded)
	}
	return json.Marshal(r.ID)
}

// Resolve returns the full dzongkhag behind the reference. Bare ids are
// looked up through the supplied function, typically a store's Lookup.
func (r DzongkhagRef) Resolve(lookup func(id string) (*Dzongkhag, bool)) (*Dzongkhag, bool) {
	if r.Embedded != nil {
		return r.Embedded, true
	}
	if lookup == nil || r.ID == "" {
		return nil, false
	}
	return lookup(r.ID)
}

// DisplayName resolves the reference to a name for display, falling back to
// the Unknown sentinel. It never fails.
func (r DzongkhagRef) DisplayName(lookup func(id string) (*Dzongkhag, bool)) string {
	if d, ok := r.Resolve(lookup); ok && d.Name != "" {
		return d.Name
	}
	return UnknownName
}
