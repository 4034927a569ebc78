package rental

import "time"

// DefaultAddress is the address of a property added without one.
const DefaultAddress = "UNKNOWN"

// Property is one rental property of a Portfolio: an Input stamped with its
// creation time.
//
// The creation timestamp is the identity of the property: positions in a
// Portfolio shift as properties are added or removed. A Property is never
// modified in place, Replace returns a new record with the same identity.
type Property struct {
	Input
	createdAt int64
	address   string
}

// NewProperty normalizes raw and stamps it with c.
func NewProperty(c *Clock, address string, raw RawInput) Property {
	if address == "" {
		address = DefaultAddress
	}
	return Property{Input: raw.Normalize(), createdAt: c.Stamp(), address: address}
}

// newPropertyFrom rebuilds a property from already normalized values.
func newPropertyFrom(createdAt int64, address string, in Input) Property {
	return Property{Input: in, createdAt: createdAt, address: address}
}

// CreatedAt returns the creation timestamp in Unix milliseconds.
func (p Property) CreatedAt() int64 { return p.createdAt }

// Created returns the creation time.
func (p Property) Created() time.Time { return CreatedTime(p.createdAt) }

// Address returns the free text label of the property.
func (p Property) Address() string { return p.address }

// Replace returns a property with the same identity and address, and the
// financial input of raw.
func (p Property) Replace(raw RawInput) Property {
	return Property{Input: raw.Normalize(), createdAt: p.createdAt, address: p.address}
}

// WithAddress returns a property with the same identity and input, and a new address.
func (p Property) WithAddress(address string) Property {
	if address == "" {
		address = DefaultAddress
	}
	q := p.Clone()
	q.address = address
	return q
}

// Clone returns a deep copy.
func (p Property) Clone() Property {
	p.Input = p.Input.Clone()
	return p
}

// Summary computes all the metrics of the property.
func (p Property) Summary() Summary { return NewSummary(p.Input) }

// Equal reports whether p and q have the same identity, address and input.
func (p Property) Equal(q Property) bool {
	return p.createdAt == q.createdAt && p.address == q.address && p.Input.Equal(q.Input)
}
