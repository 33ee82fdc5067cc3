package types

import "sort"

// Container is an immutable mapping from Attribute to Value. The same
// representation serves both a consumer's requested attributes and one
// variant's declared attributes. A container may be sparse: attributes
// known to a schema need not be present.
type Container struct {
	values map[Attribute]Value
}

// NewContainer copies the given values into a fresh container. Later
// mutation of the input map does not affect the container.
func NewContainer(values map[Attribute]Value) Container {
	copied := make(map[Attribute]Value, len(values))
	for attr, value := range values {
		copied[attr] = value
	}
	return Container{values: copied}
}

// EmptyContainer returns a container with no attributes.
func EmptyContainer() Container {
	return Container{}
}

// Get returns the value for the attribute and whether it is present.
func (c Container) Get(attr Attribute) (Value, bool) {
	value, ok := c.values[attr]
	return value, ok
}

// Has reports whether the attribute is present.
func (c Container) Has(attr Attribute) bool {
	_, ok := c.values[attr]
	return ok
}

// Attributes returns the container's attributes sorted by name, so
// iteration over a container is deterministic.
func (c Container) Attributes() []Attribute {
	out := make([]Attribute, 0, len(c.values))
	for attr := range c.values {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of attributes present.
func (c Container) Len() int {
	return len(c.values)
}

// Candidate is one concrete option for satisfying a dependency: an
// opaque identity plus the variant's declared attributes. The identity
// is never interpreted by matching logic, only carried through to the
// result.
type Candidate struct {
	ID         string
	Attributes Container
}
