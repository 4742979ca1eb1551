package redactor

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/LaGuillotine/docx-redactor/pkg/redactor/xmltree"
)

// DefaultNamespaces returns the prefix bindings of the WordprocessingML
// document family. Word writes these exact prefixes into document.xml; the
// codec guarantees they come back out unchanged.
func DefaultNamespaces() map[string]string {
	return map[string]string{
		"m":    "http://schemas.openxmlformats.org/officeDocument/2006/math",
		"mc":   "http://schemas.openxmlformats.org/markup-compatibility/2006",
		"o":    "urn:schemas-microsoft-com:office:office",
		"r":    "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
		"v":    "urn:schemas-microsoft-com:vml",
		"w":    "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
		"w10":  "urn:schemas-microsoft-com:office:word",
		"w14":  "http://schemas.microsoft.com/office/word/2010/wordml",
		"wne":  "http://schemas.microsoft.com/office/word/2006/wordml",
		"wp":   "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing",
		"wp14": "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing",
		"wpc":  "http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas",
		"wpg":  "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup",
		"wpi":  "http://schemas.microsoft.com/office/word/2010/wordprocessingInk",
		"wps":  "http://schemas.microsoft.com/office/word/2010/wordprocessingShape",
	}
}

// Codec owns a fixed, bijective prefix-to-URI table and the serialization
// override that keeps output prefixes identical to the table.
//
// Constructing a codec installs the table's inverse as the process-wide
// resolver used by xmltree.Marshal. Installation is idempotent, but two
// codecs with different tables must not serialize concurrently in the same
// process.
type Codec struct {
	prefixes map[string]string // prefix -> URI
	uris     map[string]string // URI -> prefix
}

// NewCodec validates the table and installs its inverse as the serialization
// resolver. The table must be bijective: a URI reachable through two prefixes
// would make output prefixes ambiguous.
func NewCodec(table map[string]string) (*Codec, error) {
	c := &Codec{
		prefixes: make(map[string]string, len(table)),
		uris:     make(map[string]string, len(table)),
	}
	for prefix, uri := range table {
		if other, ok := c.uris[uri]; ok {
			if other > prefix {
				prefix, other = other, prefix
			}
			return nil, fmt.Errorf("namespace table is not bijective: prefixes '%s' and '%s' share %q", other, prefix, uri)
		}
		c.prefixes[prefix] = uri
		c.uris[uri] = prefix
	}

	xmltree.SetPrefixResolver(c.lookupPrefix)
	return c, nil
}

func (c *Codec) lookupPrefix(uri string) (string, bool) {
	prefix, ok := c.uris[uri]
	return prefix, ok
}

// Expand turns a "prefix:local" shorthand into the fully qualified name.
// An unknown prefix yields a *PrefixError naming it.
func (c *Codec) Expand(tag string) (xml.Name, error) {
	prefix, local, found := strings.Cut(tag, ":")
	if !found {
		return xml.Name{}, fmt.Errorf("tag %q has no namespace prefix", tag)
	}
	uri, ok := c.prefixes[prefix]
	if !ok {
		return xml.Name{}, NewPrefixError(prefix)
	}
	return xml.Name{Space: uri, Local: local}, nil
}

// mustExpand is Expand for shorthand known to be covered by the table, such
// as the w: names the engine is built around.
func (c *Codec) mustExpand(tag string) xml.Name {
	name, err := c.Expand(tag)
	if err != nil {
		panic(fmt.Sprintf("redactor: %v", err))
	}
	return name
}
