package flagmodel

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern   = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// Infer decides the type of an unhinted value. Integers win over floats,
// floats over booleans, and everything else is a string.
//
// Negative integers are Int32 and non-negative integers are Uint64, even when
// the text does not fit; Literal reports the overflow.
func Infer(value string) Type {
	switch {
	case integerPattern.MatchString(value):
		if isNegative(value) {
			return TypeInt32
		}
		return TypeUint64
	case isDecimalFloat(value):
		return TypeDouble
	case isBool(value):
		return TypeBool
	}
	return TypeString
}

// Resolve returns hint when set, otherwise the inferred type of value.
func Resolve(value string, hint Type) Type {
	if hint != TypeNone {
		return hint
	}
	return Infer(value)
}

// isNegative reports whether an integer literal is below zero. "-0" is not.
func isNegative(value string) bool {
	if !strings.HasPrefix(value, "-") {
		return false
	}
	return strings.TrimLeft(value[1:], "0") != ""
}

func isDecimalFloat(value string) bool {
	if !floatPattern.MatchString(value) {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isBool(value string) bool {
	return strings.EqualFold(value, "true") || strings.EqualFold(value, "false")
}
