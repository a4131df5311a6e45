package analyzer

import "strings"

// TitleScanLines bounds how deep into a chunk the title search looks.
const TitleScanLines = 10

// ExtractTitle returns the first header line within the first
// TitleScanLines lines of content, with leading/trailing '#' marks and
// whitespace stripped. Without a header in that window it falls back to
// a title-cased form of the source file's base name.
func ExtractTitle(content, baseName string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > TitleScanLines {
		lines = lines[:TitleScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.Trim(line, "#"))
		}
	}

	return titleCase(strings.ReplaceAll(baseName, "_", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
