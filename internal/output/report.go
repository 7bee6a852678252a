package output

import (
	"fmt"
	"strings"

	"github.com/pfgo/pf-corpus-calculator/internal/domain"
)

// GenerateReport resolves a format name (or alias) and writes the formatted
// projection to a timestamped file, returning its name.
func GenerateReport(projection *domain.Projection, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)",
			ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "),
			strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, projection, extensionFor(f.Name()))
}

func extensionFor(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "json":
		return "json"
	default:
		return "txt"
	}
}
