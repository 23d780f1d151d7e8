package cli

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// tokenize NFC-normalizes a shell line, lower-cases it when lower is set,
// and splits it on whitespace. Contact names are stored exactly as they
// come out of here, so lower-casing the line is what makes "Alice" and
// "alice" the same contact in the shell.
func tokenize(line string, lower bool) []string {
	line = norm.NFC.String(line)
	if lower {
		line = cases.Lower(language.Und).String(line)
	}
	return strings.Fields(line)
}
