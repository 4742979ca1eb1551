package redactor

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/LaGuillotine/docx-redactor/pkg/redactor/xmltree"
)

// Redactor is an editing session over one DOCX file. It locates text runs
// highlighted with a given color and replaces their visible text while
// stripping the highlighting markup, leaving every other part of the archive
// byte-for-byte intact.
//
// A session owns at most one open document; opening another discards the
// previous tree. Sessions are single-threaded, and because the namespace
// codec installs a process-wide serialization override, two sessions with
// different namespace tables must not run concurrently in the same process.
type Redactor struct {
	config *Config
	logger *Logger
	codec  *Codec

	// Qualified names the engine operates on, expanded once at construction.
	highlightName xml.Name
	colorAttr     xml.Name
	runName       xml.Name
	paragraphName xml.Name
	runPropsName  xml.Name
	paraPropsName xml.Name
	textName      xml.Name

	path    string
	entry   zip.FileHeader
	root    *xmltree.Element
	parents xmltree.ParentIndex
}

// RedactResult reports what a redaction pass did: how many highlights were
// rewritten, and how many were skipped because no enclosing run or paragraph
// could be found, with one reason per skip.
type RedactResult struct {
	Redacted int
	Skipped  int
	Reasons  []string
}

// New creates a redactor with the global configuration and the standard
// WordprocessingML namespace table.
func New() *Redactor {
	return NewWithConfig(GetGlobalConfig())
}

// NewWithConfig creates a redactor with a custom configuration.
func NewWithConfig(config *Config) *Redactor {
	if config == nil {
		config = DefaultConfig()
	}
	codec, err := NewCodec(DefaultNamespaces())
	if err != nil {
		// The built-in table is bijective; reaching this is a programming error.
		panic(fmt.Sprintf("redactor: %v", err))
	}

	return &Redactor{
		config: config,
		logger: GetLogger(),
		codec:  codec,

		highlightName: codec.mustExpand("w:highlight"),
		colorAttr:     codec.mustExpand("w:val"),
		runName:       codec.mustExpand("w:r"),
		paragraphName: codec.mustExpand("w:p"),
		runPropsName:  codec.mustExpand("w:rPr"),
		paraPropsName: codec.mustExpand("w:pPr"),
		textName:      codec.mustExpand("w:t"),
	}
}

// Codec exposes the session's namespace codec, mainly so surrounding tooling
// can expand "prefix:local" shorthand against the same table.
func (r *Redactor) Codec() *Codec {
	return r.codec
}

// Open extracts the document part from the archive at path, parses it and
// builds the parent index. Any previously open document is discarded. A
// failed open leaves prior session state untouched.
func (r *Redactor) Open(path string) error {
	entry, data, err := extractEntry(path, r.config.DocumentPart)
	if err != nil {
		return err
	}

	root, err := xmltree.Parse(data)
	if err != nil {
		return NewDocumentError("parse", path, err)
	}

	r.path = path
	r.entry = entry
	r.root = root
	r.parents = xmltree.BuildParentIndex(root)

	r.logger.Debug("opened %s (%s, %d bytes)", path, r.config.DocumentPart, len(data))
	return nil
}

// IsOpen reports whether the session has a document.
func (r *Redactor) IsOpen() bool {
	return r.root != nil
}

func (r *Redactor) checkOpen() error {
	if r.root == nil {
		return ErrNotOpen
	}
	return nil
}

// Highlights returns the highlight markers in document order. With an empty
// color every marker is returned; otherwise only those whose color token is
// exactly equal (case-sensitive, no normalization).
func (r *Redactor) Highlights(color string) ([]*xmltree.Element, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	all := r.root.Iter(r.highlightName)
	if color == "" {
		return all, nil
	}

	var filtered []*xmltree.Element
	for _, h := range all {
		if val, ok := h.Attr(r.colorAttr); ok && val == color {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

// Colors returns the distinct highlight color tokens used in the document,
// sorted in ascending lexicographic order. A document without highlights
// yields an empty slice.
func (r *Redactor) Colors() ([]string, error) {
	highlights, err := r.Highlights("")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	colors := make([]string, 0, len(highlights))
	for _, h := range highlights {
		val, ok := h.Attr(r.colorAttr)
		if !ok || seen[val] {
			continue
		}
		seen[val] = true
		colors = append(colors, val)
	}
	sort.Strings(colors)
	return colors, nil
}

// Redact rewrites every highlight of the given color: the enclosing run or
// paragraph loses its formatting-override children, and the text of every
// text leaf beneath it is replaced with replacement verbatim. A highlight
// with no enclosing run or paragraph is skipped and reported in the result,
// never fatal. Only the in-memory tree is mutated; Save persists.
func (r *Redactor) Redact(color, replacement string) (*RedactResult, error) {
	highlights, err := r.Highlights(color)
	if err != nil {
		return nil, err
	}

	result := &RedactResult{}
	for i, highlight := range highlights {
		container := r.parents.FindAncestor(highlight, func(e *xmltree.Element) bool {
			return e.Name == r.runName || e.Name == r.paragraphName
		})
		if container == nil {
			reason := fmt.Sprintf("highlight %d (%s) has no enclosing run or paragraph", i, color)
			result.Skipped++
			result.Reasons = append(result.Reasons, reason)
			r.logger.Warn("failed to redact a highlight: %s", reason)
			continue
		}

		r.rewriteContainer(container, replacement)
		result.Redacted++
	}

	r.logger.Debug("redacted %d highlight(s) of color %s, skipped %d", result.Redacted, color, result.Skipped)
	return result, nil
}

// rewriteContainer strips the formatting-override children that declare the
// highlight (and any styling bundled with them) and overwrites the text of
// every text leaf under the container. Multiple text leaves all receive the
// full replacement string.
func (r *Redactor) rewriteContainer(container *xmltree.Element, replacement string) {
	switch container.Name {
	case r.runName:
		container.RemoveChildren(r.runPropsName)
	case r.paragraphName:
		container.RemoveChildren(r.paraPropsName)
	}

	for _, t := range container.Iter(r.textName) {
		t.Text = replacement
	}
}

// Save serializes the tree and surgically replaces the document part inside
// the archive, preserving all other entries and the archive comment
// byte-for-byte. On success the session is closed; reopen to keep editing.
func (r *Redactor) Save() error {
	if err := r.checkOpen(); err != nil {
		return err
	}

	data, err := xmltree.Marshal(r.root)
	if err != nil {
		return NewDocumentError("serialize", r.path, err)
	}

	if err := replaceEntry(r.path, r.entry, data); err != nil {
		return err
	}

	r.logger.Info("saved %s", r.path)
	r.reset()
	return nil
}

// Close discards the open document, if any.
func (r *Redactor) Close() error {
	r.reset()
	return nil
}

func (r *Redactor) reset() {
	r.path = ""
	r.entry = zip.FileHeader{}
	r.root = nil
	r.parents = nil
}
