// Package itemxml writes InterMine item-exchange XML documents: a flat
// <items> list of <item> elements, each with a class, a document-unique id,
// and attribute/reference children. Only the small subset needed to emit
// synteny blocks with their organism and chromosome reference items is
// implemented.
package itemxml

import "fmt"

// Item is one object in an item-exchange document.
type Item struct {
	Class string
	ID    string
	Attrs []Attr
	Refs  []Ref
}

// Attr is a scalar attribute of an item.
type Attr struct {
	Name  string
	Value string
}

// Ref is a reference from one item to another item's ID.
type Ref struct {
	Name  string
	RefID string
}

// IDSource allocates document-unique item identifiers of the form
// "<classid>_<n>". Class ids are assigned in order of first use, starting at
// 1; n counts items of that class, also from 1. A source is scoped to one
// document; it is not safe for concurrent use.
type IDSource struct {
	classIDs map[string]int
	counts   map[int]int
}

// NewIDSource returns an empty allocator.
func NewIDSource() *IDSource {
	return &IDSource{classIDs: map[string]int{}, counts: map[int]int{}}
}

// Next returns the next identifier for the given class.
func (s *IDSource) Next(class string) string {
	cid, ok := s.classIDs[class]
	if !ok {
		cid = len(s.classIDs) + 1
		s.classIDs[class] = cid
	}
	s.counts[cid]++
	return fmt.Sprintf("%d_%d", cid, s.counts[cid])
}
