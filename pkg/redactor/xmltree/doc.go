// Package xmltree provides a generic, namespace-aware XML element tree for
// the WordprocessingML parts of a DOCX package.
//
// Unlike the typed structures a template engine would use, the redactor must
// round-trip arbitrary document markup it does not understand, so the tree is
// fully generic: every element keeps its qualified name, attributes, ordered
// children and character data exactly as parsed.
//
// # Content model
//
// The tree follows the ElementTree content model: an element's Text holds the
// character data before its first child, and an element's Tail holds the
// character data between its own end tag and the next sibling. This is enough
// to reproduce mixed content without a separate text-node type.
//
// # Namespace handling
//
// Parsing uses encoding/xml, which resolves every prefixed name to a
// (namespace URI, local name) pair. The serializer maps URIs back to prefixes
// through a process-wide PrefixResolver installed with SetPrefixResolver,
// so output uses the caller's fixed prefix table instead of generated
// aliases. See the redactor package for the WordprocessingML table.
//
// # Parent lookups
//
// Elements carry child pointers only. BuildParentIndex derives a
// child-to-parent map in one traversal; the index is a cache that must be
// rebuilt after any structural change to the tree.
package xmltree
