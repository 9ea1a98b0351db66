package whisparg

import (
	"strings"
)

// Resolve scans args for arg's switch and returns an updated snapshot
// carrying the resolved value. The args slice is a full argument vector in
// the style of os.Args; tokens that do not begin with "-" are skipped, so the
// program name at args[0] is harmless.
//
// The scan does not stop at the first match: when the same switch appears
// more than once, the last occurrence wins. A flag switch never consumes the
// following token; any other switch takes the next token as its raw value and
// fails with MissingValue when none exists. If the switch never matched, a
// required argument fails with RequiredMissing and any other argument is
// returned unchanged, leaving Value to fall back to the default.
func Resolve[T Builtin](args []string, arg Argument[T]) (Argument[T], error) {
	return ResolveFunc(args, arg, converterFor[T]())
}

// ResolveFunc is Resolve with an explicit converter, for value types outside
// the Builtin set.
//
// An empty captured value is indistinguishable from an absent one: supplying
// `--opt ""` takes the same default/required path as omitting --opt entirely.
func ResolveFunc[T any](args []string, arg Argument[T], convert ConvertFunc[T]) (Argument[T], error) {
	raw, err := scan(args, arg.name, arg.shortName, isFlagType[T]())
	if err != nil {
		return arg, err
	}

	if raw == "" {
		if arg.required {
			return arg, &Error{Kind: RequiredMissing, Name: arg.name}
		}
		return arg, nil
	}

	value, err := convert(raw)
	if err != nil {
		return arg, &Error{Kind: InvalidValue, Name: arg.name, Err: err}
	}
	return arg.withValue(value), nil
}

// scan walks the token list and returns the raw value captured for the
// switch, or "" if it never matched.
func scan(args []string, name, shortName string, isFlag bool) (string, error) {
	raw := ""
	for i := 0; i < len(args); i++ {
		token := args[i]
		if !strings.HasPrefix(token, "-") {
			continue
		}
		if !matchesSwitch(token, name, shortName) {
			continue
		}
		if isFlag {
			raw = FlagTrue.String()
			continue
		}
		if i+1 >= len(args) {
			return "", &Error{Kind: MissingValue, Name: name}
		}
		i++
		raw = args[i]
	}
	return raw, nil
}

// matchesSwitch reports whether token selects the argument. Tokens of exactly
// two characters are reserved for the short form, so a one-character long
// name can never collide with a short name.
func matchesSwitch(token, name, shortName string) bool {
	switch len(token) {
	case 0, 1:
		return false
	case 2:
		return shortName != "" && token == "-"+shortName
	default:
		return token == "--"+name
	}
}
