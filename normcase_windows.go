package fspath

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormCase folds the case of the path and converts forward slashes to
// backslashes.
func (p Path) NormCase() Path {
	folded := cases.Fold().String(string(p))
	return Path(strings.ReplaceAll(folded, "/", `\`))
}
