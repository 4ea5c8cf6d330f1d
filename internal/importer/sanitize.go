package importer

import "strings"

// Sanitize strips terminal control sequences from raw shell output.
//
// Interactive shells routinely emit escape sequences via terminal
// integration reporting (prompt marks, window title updates, color
// resets), and those bytes corrupt naive line parsing. This runs as a
// dedicated pre-pass before any line splitting.
//
// Removed: ANSI CSI sequences (ESC [ ... final byte), OSC sequences
// (ESC ] ... terminated by BEL or ESC \), other two-byte ESC sequences,
// and C0 control bytes except newline and tab.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if c == 0x1b { // ESC
			if i+1 >= len(raw) {
				break
			}
			switch raw[i+1] {
			case '[': // CSI: parameters and intermediates, then final byte @-~
				j := i + 2
				for j < len(raw) && (raw[j] < 0x40 || raw[j] > 0x7e) {
					j++
				}
				i = j // skip final byte too
			case ']': // OSC: terminated by BEL or ST (ESC \)
				j := i + 2
				for j < len(raw) {
					if raw[j] == 0x07 {
						break
					}
					if raw[j] == 0x1b && j+1 < len(raw) && raw[j+1] == '\\' {
						j++
						break
					}
					j++
				}
				i = j
			default: // two-byte sequence (ESC c, ESC =, charset selection, ...)
				i++
			}
			continue
		}

		// Drop C0 controls except newline and tab; carriage returns
		// disappear here, which also normalizes CRLF output.
		if c < 0x20 && c != '\n' && c != '\t' {
			continue
		}
		if c == 0x7f { // DEL
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}
