package golden

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff describes how actual differs from expected: both sides with line
// numbers followed by the character-level changes.
func Diff(name, expected, actual string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Test: %s ===\n", name)

	if expected == actual {
		b.WriteString("No differences found - test passes!\n")
		return b.String()
	}

	b.WriteString("\n--- Expected ---\n")
	writeNumbered(&b, expected)
	b.WriteString("\n--- Actual ---\n")
	writeNumbered(&b, actual)

	b.WriteString("\n--- Diff ---\n")
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "- %q\n", d.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "+ %q\n", d.Text)
		case diffmatchpatch.DiffEqual:
			if len(d.Text) > 50 {
				fmt.Fprintf(&b, "  %q...\n", d.Text[:47])
			} else {
				fmt.Fprintf(&b, "  %q\n", d.Text)
			}
		}
	}
	return b.String()
}

func writeNumbered(b *strings.Builder, content string) {
	for i, line := range strings.Split(content, "\n") {
		fmt.Fprintf(b, "%4d│%s\n", i+1, line)
	}
}
