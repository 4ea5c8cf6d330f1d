// Package block locates, renders, and splices the AliasForge managed
// block inside user-owned shell config files.
//
// The managed block is the only region of a config file this tool will
// ever rewrite. All surrounding content is preserved byte-for-byte.
package block

import (
	"fmt"
	"strings"
	"time"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/shell"
)

// Marker body shared by all shells; the comment prefix varies per grammar.
const (
	startMarkerBody = ">>> AliasForge managed aliases >>>"
	endMarkerBody   = "<<< AliasForge managed aliases <<<"
	noticeBody      = "Managed by AliasForge - do not edit manually"
)

// Markers holds the literal start and end marker lines for one shell.
type Markers struct {
	Start string
	End   string
}

// MarkersFor builds the marker lines using the shell's comment prefix.
func MarkersFor(s shell.Shell) Markers {
	return Markers{
		Start: s.CommentPrefix() + " " + startMarkerBody,
		End:   s.CommentPrefix() + " " + endMarkerBody,
	}
}

// Span is a located managed block: byte offsets into the file text.
// End is inclusive of the end marker line (without its trailing newline).
type Span struct {
	Start int
	End   int
}

// Locate finds the managed block inside text. It matches the first
// occurrence of the start marker and the first occurrence of the end
// marker after it, as literal substrings. Both must be present and
// ordered, otherwise found is false.
//
// Multiple blocks (prior corruption from manual copy-paste) are not
// detected: only the first start/first end pair is treated as the block.
func Locate(text string, m Markers) (span Span, found bool) {
	start := strings.Index(text, m.Start)
	if start < 0 {
		return Span{}, false
	}

	rel := strings.Index(text[start+len(m.Start):], m.End)
	if rel < 0 {
		return Span{}, false
	}

	end := start + len(m.Start) + rel + len(m.End)
	return Span{Start: start, End: end}, true
}

// Render produces the full managed block text for the given records,
// ending without a trailing newline. One statement line is emitted per
// enabled record with a valid name; each statement is preceded by a
// comment line holding the record's description when non-empty. Records
// that are disabled or carry invalid names are silently excluded.
func Render(s shell.Shell, records []alias.Record, now time.Time) string {
	m := MarkersFor(s)
	prefix := s.CommentPrefix()

	var b strings.Builder
	b.WriteString(m.Start)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s\n", prefix, noticeBody)
	fmt.Fprintf(&b, "%s Last updated: %s\n", prefix, now.UTC().Format("2006-01-02T15:04:05.000Z"))
	b.WriteByte('\n')

	for _, r := range records {
		if !r.Exportable() {
			continue
		}
		if r.Description != "" {
			fmt.Fprintf(&b, "%s %s\n", prefix, r.Description)
		}
		b.WriteString(s.RenderAlias(r.Name, r.Command))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.End)
	return b.String()
}

// Splice replaces any prior managed block in original with rendered and
// returns the new file text. The remainder of the original content is
// preserved verbatim apart from its trailing whitespace: exactly one
// blank line separates it from the block, and the result always ends
// with a newline.
func Splice(original, rendered string, m Markers) string {
	remainder := original

	if span, found := Locate(original, m); found {
		before := original[:span.Start]
		after := original[span.End:]
		// Drop the newline that followed the old block so replacement
		// does not accumulate blank lines across exports.
		after = strings.TrimPrefix(after, "\n")
		remainder = before + after
	}

	remainder = strings.TrimRight(remainder, " \t\r\n")
	if remainder == "" {
		return rendered + "\n"
	}
	return remainder + "\n\n" + rendered + "\n"
}
