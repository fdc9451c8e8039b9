// Package util holds naming helpers shared by the generators.
package util

import (
	"strings"
	"unicode"
)

// ToPascalCase converts snake_case to PascalCase. Runs of underscores are
// dropped and the letter after each is capitalized; the rest is kept as-is.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_'
	})

	var result strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}

	return result.String()
}

// ToCamelCase converts snake_case to camelCase
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if len(pascal) == 0 {
		return pascal
	}

	// Lowercase first letter
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

var tableCellEscaper = strings.NewReplacer(
	"|", `\|`,
	"\n", " ",
)

// CodeSpan renders s as an inline code span inside a markdown table cell.
// Backslash escapes do not apply in code spans, so the fence is one backtick
// longer than the longest backtick run in s.
func CodeSpan(s string) string {
	s = tableCellEscaper.Replace(s)

	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}

	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}
