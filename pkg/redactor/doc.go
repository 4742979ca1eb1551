// Package redactor edits the main document part of a DOCX file in place:
// it finds text runs highlighted with a given color, replaces their visible
// text, and strips the highlighting markup, while every other entry of the
// ZIP container and the container comment are preserved byte-for-byte.
//
// # Quick Start
//
//	r := redactor.New()
//	if err := r.Open("contract.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
//	colors, err := r.Colors()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(colors) // e.g. [green yellow]
//
//	result, err := r.Redact("yellow", "[REDACTED]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Skipped > 0 {
//	    log.Printf("skipped %d highlight(s)", result.Skipped)
//	}
//
//	if err := r.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The package is organized around a few small components:
//
//   - xmltree (subpackage): generic namespace-aware element tree with
//     parse/serialize and a derived child-to-parent index
//   - Codec: the fixed WordprocessingML prefix table plus the serialization
//     override that keeps output prefixes identical to the input's
//   - archive surgery: extraction of one entry and the atomic
//     rebuild-and-rename that replaces it without touching the others
//   - Redactor: the session tying these together (Open, Colors, Highlights,
//     Redact, Save, Close)
//
// # Constraints
//
// Sessions are single-threaded and hold one document at a time. The codec's
// prefix resolution is process-wide state, so two sessions with different
// namespace tables must not serialize concurrently in one process. Redaction
// mutates only the in-memory tree; nothing reaches disk until Save, and Save
// closes the session.
package redactor
