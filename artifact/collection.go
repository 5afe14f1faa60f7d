// SPDX-License-Identifier: MIT

package artifact

import "sort"

// Collection is a set of artifacts of one tier keyed by identifier.
// Iteration is always in sorted identifier order.
type Collection struct {
	byID map[string]Artifact
}

// NewCollection returns a collection holding arts. A later artifact
// replaces an earlier one with the same identifier.
func NewCollection(arts ...Artifact) *Collection {
	c := &Collection{byID: make(map[string]Artifact, len(arts))}
	for _, a := range arts {
		c.Add(a)
	}
	return c
}

// Add inserts or replaces a.
func (c *Collection) Add(a Artifact) {
	if c.byID == nil {
		c.byID = make(map[string]Artifact)
	}
	c.byID[a.id] = a
}

// Get returns the artifact with the given identifier.
func (c *Collection) Get(id string) (Artifact, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Len returns the number of artifacts.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// IDs returns the sorted identifiers.
func (c *Collection) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Artifacts returns the artifacts in sorted identifier order.
func (c *Collection) Artifacts() []Artifact {
	ids := c.IDs()
	out := make([]Artifact, len(ids))
	for i, id := range ids {
		out[i] = c.byID[id]
	}
	return out
}

// Merge returns a new collection with the artifacts of all inputs. On an
// identifier clash the artifact from the later collection wins.
func Merge(cs ...*Collection) *Collection {
	out := NewCollection()
	for _, c := range cs {
		if c == nil {
			continue
		}
		for _, a := range c.byID {
			out.Add(a)
		}
	}
	return out
}
