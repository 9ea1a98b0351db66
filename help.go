package whisparg

import (
	"fmt"
	"io"
	"strings"

	"github.com/huandu/xstrings"
)

// DefaultHelpWidth is the wrap width used by WriteHelp and HelpString.
const DefaultHelpWidth = 80

// HelpLines renders the help listing for every argument parsed so far,
// wrapped to maxWidth columns. The first two lines are the usage line and an
// "Options:" header; each argument follows in parse order.
//
// Two layouts exist. When the longest key string is shorter than a third of
// maxWidth, key and description share a row, with descriptions aligned in a
// column after the longest key. Otherwise each key gets its own line and the
// description follows indented by one twentieth of maxWidth.
//
// Lines are the renderer's only product; writing them anywhere is the
// caller's concern.
func (p *Parser) HelpLines(maxWidth int) []string {
	lines := []string{
		"Usage: " + p.ProgramName() + " [options]",
		"Options:",
	}

	keys := make([]string, len(p.infos))
	keysMaxLength := 0
	for i, info := range p.infos {
		keys[i] = info.Key()
		if len(keys[i]) > keysMaxLength {
			keysMaxLength = len(keys[i])
		}
	}

	oneLine := keysMaxLength < maxWidth/3

	for i, info := range p.infos {
		var leading string
		var indentWidth, descriptionWidth int
		if oneLine {
			leading = xstrings.LeftJustify(keys[i], keysMaxLength, " ") + "  "
			indentWidth = keysMaxLength + 2
			descriptionWidth = maxWidth - keysMaxLength - 2
		} else {
			lines = append(lines, keys[i])
			indentWidth = maxWidth / 20
			descriptionWidth = maxWidth - indentWidth
			leading = strings.Repeat(" ", indentWidth)
		}

		wrapped := wrapLines(info.Description, descriptionWidth)
		if len(wrapped) == 0 {
			// An empty description still yields the key row in one-line
			// layout; in stacked layout the key line is already out.
			if oneLine {
				lines = append(lines, leading)
			}
			continue
		}

		indent := strings.Repeat(" ", indentWidth)
		for j, line := range wrapped {
			if j == 0 {
				lines = append(lines, leading+line)
			} else {
				lines = append(lines, indent+line)
			}
		}
	}

	return lines
}

// WriteHelp writes the help listing to w at DefaultHelpWidth.
func (p *Parser) WriteHelp(w io.Writer) {
	for _, line := range p.HelpLines(DefaultHelpWidth) {
		fmt.Fprintln(w, line)
	}
}

// HelpString returns the help listing as a single string.
func (p *Parser) HelpString() string {
	sb := strings.Builder{}
	p.WriteHelp(&sb)
	return sb.String()
}

// wrapLines splits text on embedded newlines and word-wraps each resulting
// line independently. Blank lines contribute nothing.
func wrapLines(text string, maxWidth int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(line, maxWidth)...)
	}
	return lines
}

// wrapLine greedily packs whitespace-delimited words into lines of at most
// maxWidth. A word longer than maxWidth is placed alone on its own line
// rather than split.
func wrapLine(text string, maxWidth int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		if len(current)+len(word)+1 <= maxWidth {
			if current != "" {
				current += " "
			}
			current += word
		} else {
			if current != "" {
				lines = append(lines, current)
			}
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
