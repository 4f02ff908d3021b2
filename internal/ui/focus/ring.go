// Package focus moves keyboard focus inside modal regions: a linear ring of
// fields for drawers and a 2x2 grid for the currency converter.
package focus

import "sort"

type member struct {
	id      string
	order   int
	seq     uint64
	enabled bool
}

// Ring cycles focus over registered fields in (order, registration) order.
// Registrations take effect immediately, also while focus is inside the ring.
type Ring struct {
	members []member
	seq     uint64
	current string
}

// NewRing creates an empty ring
func NewRing() *Ring {
	return &Ring{}
}

// Register adds a field, or updates its order when already present.
// New fields start enabled.
func (r *Ring) Register(id string, order int) {
	for i := range r.members {
		if r.members[i].id == id {
			r.members[i].order = order
			r.sort()
			return
		}
	}
	r.seq++
	r.members = append(r.members, member{id: id, order: order, seq: r.seq, enabled: true})
	r.sort()
}

// Unregister removes a field. Removing the focused field blurs the ring.
func (r *Ring) Unregister(id string) {
	for i := range r.members {
		if r.members[i].id == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	if r.current == id {
		r.current = ""
	}
}

// SetEnabled includes or skips a field when cycling
func (r *Ring) SetEnabled(id string, enabled bool) {
	for i := range r.members {
		if r.members[i].id == id {
			r.members[i].enabled = enabled
		}
	}
	if !enabled && r.current == id {
		r.current = ""
	}
}

// Focus moves focus to id. It returns false for unknown or disabled fields.
func (r *Ring) Focus(id string) bool {
	for _, m := range r.members {
		if m.id == id && m.enabled {
			r.current = id
			return true
		}
	}
	return false
}

// Current returns the focused field, or "" when focus is unknown
func (r *Ring) Current() string { return r.current }

// Blur forgets the focused field, as when focus leaves the ring externally
func (r *Ring) Blur() { r.current = "" }

// Len returns the number of enabled fields
func (r *Ring) Len() int { return len(r.enabled()) }

// Next focuses the following field, wrapping to the first. With unknown
// focus it lands on the first field.
func (r *Ring) Next() string {
	ids := r.enabled()
	if len(ids) == 0 {
		return r.current
	}
	idx := indexOf(ids, r.current)
	r.current = ids[(idx+1)%len(ids)]
	return r.current
}

// Prev focuses the preceding field, wrapping to the last. With unknown
// focus it lands on the last field.
func (r *Ring) Prev() string {
	ids := r.enabled()
	if len(ids) == 0 {
		return r.current
	}
	idx := indexOf(ids, r.current)
	if idx < 0 {
		idx = 0
	}
	r.current = ids[(idx-1+len(ids))%len(ids)]
	return r.current
}

func (r *Ring) enabled() []string {
	ids := make([]string, 0, len(r.members))
	for _, m := range r.members {
		if m.enabled {
			ids = append(ids, m.id)
		}
	}
	return ids
}

func (r *Ring) sort() {
	sort.SliceStable(r.members, func(i, j int) bool {
		if r.members[i].order != r.members[j].order {
			return r.members[i].order < r.members[j].order
		}
		return r.members[i].seq < r.members[j].seq
	})
}

func indexOf(ids []string, id string) int {
	if id == "" {
		return -1
	}
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
