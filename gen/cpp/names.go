package cpp

import (
	"strconv"
	"strings"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/flagmodel"
)

// cppKeywords are the reserved words of C++20, alternative tokens included.
var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true, "asm": true,
	"auto": true, "bitand": true, "bitor": true, "bool": true, "break": true,
	"case": true, "catch": true, "char": true, "char8_t": true, "char16_t": true,
	"char32_t": true, "class": true, "compl": true, "concept": true, "const": true,
	"consteval": true, "constexpr": true, "constinit": true, "const_cast": true,
	"continue": true, "co_await": true, "co_return": true, "co_yield": true,
	"decltype": true, "default": true, "delete": true, "do": true, "double": true,
	"dynamic_cast": true, "else": true, "enum": true, "explicit": true,
	"export": true, "extern": true, "false": true, "float": true, "for": true,
	"friend": true, "goto": true, "if": true, "inline": true, "int": true,
	"long": true, "mutable": true, "namespace": true, "new": true,
	"noexcept": true, "not": true, "not_eq": true, "nullptr": true,
	"operator": true, "or": true, "or_eq": true, "private": true,
	"protected": true, "public": true, "register": true,
	"reinterpret_cast": true, "requires": true, "return": true, "short": true,
	"signed": true, "sizeof": true, "static": true, "static_assert": true,
	"static_cast": true, "struct": true, "switch": true, "template": true,
	"this": true, "thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true,
	"unsigned": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "wchar_t": true, "while": true, "xor": true, "xor_eq": true,
}

// generatedNames are referenced unqualified inside generated code, so a
// member or namespace with one of these names would shadow them.
var generatedNames = map[string]bool{
	"po":       true,
	"std":      true,
	"boost":    true,
	"config_t": true,
	storeName:  true,
	"int32_t":  true,
	"int64_t":  true,
	"uint32_t": true,
	"uint64_t": true,
}

// moduleReserved collide with the functions declared next to the module
// namespaces.
var moduleReserved = map[string]bool{
	"options":    true,
	"parse_args": true,
}

func isReserved(name string) bool {
	return cppKeywords[name] || generatedNames[name]
}

// ValidateNamespace accepts "" or "::"-separated identifiers.
func ValidateNamespace(ns string) error {
	if ns == "" {
		return nil
	}
	for _, part := range strings.Split(ns, "::") {
		if !flagmodel.IsIdentifier(part) || cppKeywords[part] {
			return errors.Newf("%q is not a valid C++ namespace", ns)
		}
	}
	return nil
}

// literal renders a flag default as a C++ expression.
func literal(flag flagmodel.Flag) string {
	switch flag.Type {
	case flagmodel.TypeString:
		return flagmodel.QuoteString(flagmodel.Unquote(flag.Literal))
	case flagmodel.TypeUint64:
		// Above INT64_MAX an unsuffixed decimal literal has no standard type.
		if n, err := strconv.ParseUint(flag.Literal, 10, 64); err == nil && n > 1<<63-1 {
			return flag.Literal + "ULL"
		}
	case flagmodel.TypeInt64:
		// 9223372036854775808 is not representable before negation.
		if flag.Literal == "-9223372036854775808" {
			return "(-9223372036854775807LL - 1)"
		}
	}
	return flag.Literal
}
