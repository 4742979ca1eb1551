package xmltree

import (
	"encoding/xml"
)

// Element is a node in the parsed document tree. Name.Space holds the
// namespace URI (empty for unqualified names), Attrs keeps the attributes in
// document order, including xmlns declarations.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Element

	// Text is the character data before the first child, Tail the character
	// data after this element's end tag (within the parent).
	Text string
	Tail string
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name xml.Name) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Iter returns this element and all its descendants with the given name, in
// document order. The zero xml.Name matches every element.
func (e *Element) Iter(name xml.Name) []*Element {
	var matches []*Element
	e.walk(func(el *Element) {
		if name == (xml.Name{}) || el.Name == name {
			matches = append(matches, el)
		}
	})
	return matches
}

func (e *Element) walk(visit func(*Element)) {
	visit(e)
	for _, c := range e.Children {
		c.walk(visit)
	}
}

// RemoveChildren removes every direct child with the given name and returns
// how many were removed. Descendants below other children are not touched.
func (e *Element) RemoveChildren(name xml.Name) int {
	kept := e.Children[:0]
	removed := 0
	for _, c := range e.Children {
		if c.Name == name {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	e.Children = kept
	return removed
}

// ParentIndex maps each element to its direct parent. The root element has no
// entry. It is derived state: rebuild it after any change to the tree's shape
// before relying on further ancestor lookups.
type ParentIndex map[*Element]*Element

// BuildParentIndex walks the tree once and records the parent of every
// element below root.
func BuildParentIndex(root *Element) ParentIndex {
	index := make(ParentIndex)
	root.walk(func(el *Element) {
		for _, c := range el.Children {
			index[c] = el
		}
	})
	return index
}

// FindAncestor walks parent links starting at start's parent and returns the
// first ancestor satisfying pred, or nil if the walk runs off the indexed
// tree first. A nil result is an expected outcome, not an error: callers must
// be able to treat unrooted nodes as skippable.
func (idx ParentIndex) FindAncestor(start *Element, pred func(*Element) bool) *Element {
	for el := idx[start]; el != nil; el = idx[el] {
		if pred(el) {
			return el
		}
	}
	return nil
}
