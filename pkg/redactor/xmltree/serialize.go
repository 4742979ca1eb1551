package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// PrefixResolver maps a namespace URI back to the prefix it should be
// serialized with. An empty prefix means the default namespace.
type PrefixResolver func(uri string) (prefix string, ok bool)

// resolver is the process-wide URI-to-prefix resolution used by Marshal.
// encoding/xml offers no way to control prefix generation per encoder, so the
// resolver is installed globally, once, by whoever owns the prefix table.
// Re-installing simply replaces the function; two resolvers with different
// tables must not be used concurrently in the same process.
var resolver PrefixResolver

// SetPrefixResolver installs the URI-to-prefix resolution consulted during
// serialization. It is idempotent and not safe for concurrent use.
func SetPrefixResolver(r PrefixResolver) {
	resolver = r
}

// xmlNamespaceURL is the predeclared namespace of the xml: prefix, which
// encoding/xml resolves without a declaration.
const xmlNamespaceURL = "http://www.w3.org/XML/1998/namespace"

const header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Marshal serializes the tree, emitting every qualified name with the prefix
// the installed resolver returns for its namespace URI. A URI the resolver
// does not know is an error: inventing an alias would break the fixed
// bindings the document was opened with.
func Marshal(root *Element) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := writeElement(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeElement(buf *bytes.Buffer, e *Element) error {
	name, err := qualifyElement(e.Name)
	if err != nil {
		return err
	}

	buf.WriteByte('<')
	buf.WriteString(name)
	for _, a := range e.Attrs {
		attrName, err := qualifyAttr(a.Name)
		if err != nil {
			return err
		}
		buf.WriteByte(' ')
		buf.WriteString(attrName)
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(a.Value))
		buf.WriteByte('"')
	}

	if len(e.Children) == 0 && e.Text == "" {
		buf.WriteString("/>")
		return nil
	}

	buf.WriteByte('>')
	buf.WriteString(escapeText(e.Text))
	for _, c := range e.Children {
		if err := writeElement(buf, c); err != nil {
			return err
		}
		buf.WriteString(escapeText(c.Tail))
	}
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
	return nil
}

func qualifyElement(n xml.Name) (string, error) {
	if n.Space == "" {
		return n.Local, nil
	}
	prefix, err := lookupPrefix(n.Space)
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return n.Local, nil
	}
	return prefix + ":" + n.Local, nil
}

func qualifyAttr(n xml.Name) (string, error) {
	switch {
	case n.Space == "" && n.Local == "xmlns":
		return "xmlns", nil
	case n.Space == "xmlns":
		return "xmlns:" + n.Local, nil
	case n.Space == xmlNamespaceURL:
		return "xml:" + n.Local, nil
	case n.Space == "":
		return n.Local, nil
	}
	prefix, err := lookupPrefix(n.Space)
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return n.Local, nil
	}
	return prefix + ":" + n.Local, nil
}

func lookupPrefix(uri string) (string, error) {
	if resolver == nil {
		return "", fmt.Errorf("no prefix resolver installed for namespace %q", uri)
	}
	prefix, ok := resolver(uri)
	if !ok {
		return "", fmt.Errorf("no prefix bound for namespace %q", uri)
	}
	return prefix, nil
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
