package flagmodel

import (
	"strconv"
	"strings"

	"github.com/teranos/confgen/errors"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Literal renders value as a source literal of type t. The result is valid in
// both C-family and Go source: booleans are lowercased, integers lose signs and
// leading zeros they do not need, and strings are quote-wrapped unless they are
// already a well-formed quoted literal.
func Literal(value string, t Type) (string, error) {
	if t.IsInteger() {
		return integerLiteral(value, t)
	}

	switch t {
	case TypeBool:
		if !isBool(value) {
			return "", mismatch(value, t)
		}
		return strings.ToLower(value), nil
	case TypeFloat, TypeDouble:
		if !floatPattern.MatchString(value) {
			return "", mismatch(value, t)
		}
		if _, err := strconv.ParseFloat(value, t.BitSize()); err != nil {
			return "", mismatch(value, t)
		}
		// 0755 is an octal integer literal, not seven hundred fifty-five.
		if integerPattern.MatchString(value) {
			return trimIntegerZeros(value), nil
		}
		return value, nil
	case TypeString:
		return QuoteString(value), nil
	}
	return "", errors.Newk(errors.ErrUnsupportedType, "value %q has no type", value)
}

func integerLiteral(value string, t Type) (string, error) {
	if !integerPattern.MatchString(value) {
		return "", mismatch(value, t)
	}
	if t.IsSigned() {
		n, err := strconv.ParseInt(value, 10, t.BitSize())
		if err != nil {
			return "", mismatch(value, t)
		}
		return strconv.FormatInt(n, 10), nil
	}
	if isNegative(value) {
		return "", mismatch(value, t)
	}
	n, err := strconv.ParseUint(strings.TrimLeft(value, "+-"), 10, t.BitSize())
	if err != nil {
		return "", mismatch(value, t)
	}
	return strconv.FormatUint(n, 10), nil
}

// QuoteString wraps value in double quotes, escaping it, unless it already is
// a quoted literal. QuoteString(QuoteString(v)) == QuoteString(v).
func QuoteString(value string) string {
	if IsQuoted(value) {
		return value
	}
	return `"` + stringEscaper.Replace(value) + `"`
}

// IsQuoted reports whether value starts and ends with a double quote and has
// no unescaped double quote in between.
func IsQuoted(value string) bool {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return false
	}
	inner := value[1 : len(value)-1]
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '\\':
			if i == len(inner)-1 {
				// The closing quote would be escaped.
				return false
			}
			i++
		case '"':
			return false
		}
	}
	return true
}

// Unquote returns the text a quoted string literal denotes. Only the escapes
// QuoteString produces are decoded; any other backslash is kept as written.
func Unquote(literal string) string {
	if !IsQuoted(literal) {
		return literal
	}
	inner := literal[1 : len(literal)-1]
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' || i == len(inner)-1 {
			sb.WriteByte(c)
			continue
		}
		i++
		switch inner[i] {
		case '\\', '"':
			sb.WriteByte(inner[i])
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(inner[i])
		}
	}
	return sb.String()
}

func trimIntegerZeros(value string) string {
	sign := ""
	if value[0] == '+' || value[0] == '-' {
		sign, value = value[:1], value[1:]
	}
	value = strings.TrimLeft(value, "0")
	if value == "" {
		value = "0"
	}
	if sign == "+" {
		sign = ""
	}
	return sign + value
}

func mismatch(value string, t Type) error {
	return errors.Newk(errors.ErrTypeMismatch, "value %q is not a valid %s", value, t)
}
