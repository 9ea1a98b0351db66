package whisparg

import (
	"fmt"
	"strings"
)

// Argument describes one named command-line option with value type T. An
// Argument is a plain value: builder methods return updated copies instead of
// mutating the receiver, so a declaration can be shared and reused without
// hidden aliasing. Resolution (see Resolve and Parse) likewise returns a new
// snapshot carrying the resolved value.
type Argument[T any] struct {
	name         string
	shortName    string
	description  string
	defaultValue *T
	required     bool
	value        *T
}

// New creates an argument with only a long name, matched as "--name".
func New[T any](name string) Argument[T] {
	return Argument[T]{name: name}
}

// NewShort creates an argument with a long name and a single-character short
// name alias, matched as "--name" or "-s".
func NewShort[T any](shortName rune, name string) Argument[T] {
	return Argument[T]{name: name, shortName: string(shortName)}
}

// Description sets the help text and returns the updated snapshot. The text
// may contain embedded newlines; the help renderer wraps each line
// independently.
func (a Argument[T]) Description(text string) Argument[T] {
	a.description = text
	return a
}

// Default sets the value returned by Value when the argument is not supplied
// on the command line.
func (a Argument[T]) Default(value T) Argument[T] {
	a.defaultValue = &value
	return a
}

// Required marks the argument as mandatory. Resolving a required argument
// that was never supplied fails with RequiredMissing, even if a default is
// also set.
func (a Argument[T]) Required(required bool) Argument[T] {
	a.required = required
	return a
}

// Name returns the long name.
func (a Argument[T]) Name() string {
	return a.name
}

// ShortName returns the short name, or "" if none was given.
func (a Argument[T]) ShortName() string {
	return a.shortName
}

// IsRequired reports whether the argument was marked required.
func (a Argument[T]) IsRequired() bool {
	return a.required
}

// DefaultValue returns the default and whether one was set.
func (a Argument[T]) DefaultValue() (T, bool) {
	if a.defaultValue == nil {
		var zero T
		return zero, false
	}
	return *a.defaultValue, true
}

// Value returns the resolved value, falling back to the default when the
// argument was not supplied. The second result is false when neither is
// present.
func (a Argument[T]) Value() (T, bool) {
	if a.value != nil {
		return *a.value, true
	}
	return a.DefaultValue()
}

// withValue returns a snapshot carrying the resolved value.
func (a Argument[T]) withValue(value T) Argument[T] {
	a.value = &value
	return a
}

// HelpString renders a standalone two-line help entry for the argument, for
// programs that parse piecemeal with Resolve and assemble their own help
// text. The Parser help listing does not use this format.
func (a Argument[T]) HelpString() string {
	var sb strings.Builder
	sb.WriteString("  ")
	if a.shortName != "" {
		sb.WriteString("-" + a.shortName + ", ")
	}
	sb.WriteString("--" + a.name)
	if !isFlagType[T]() {
		sb.WriteString(" <" + strings.ToUpper(a.name) + ">")
	}
	sb.WriteString("\n    " + a.description)
	if a.defaultValue != nil {
		sb.WriteString(fmt.Sprintf(" (Default: %v)", *a.defaultValue))
	}
	return sb.String()
}

// Info returns the type-erased summary used for help rendering.
func (a Argument[T]) Info() ArgumentInfo {
	return ArgumentInfo{
		Name:        a.name,
		ShortName:   a.shortName,
		Description: a.description,
		IsFlag:      isFlagType[T](),
		IsRequired:  a.required,
	}
}

// ArgumentInfo is a type-erased summary of an Argument. It decouples help
// rendering from the argument's value type.
type ArgumentInfo struct {
	Name        string
	ShortName   string
	Description string
	IsFlag      bool
	IsRequired  bool
}

// Key returns the switch listing used in the help message, e.g.
// "--length (-l) <LENGTH>". Flag arguments get no value placeholder.
func (info ArgumentInfo) Key() string {
	key := "--" + info.Name
	if info.ShortName != "" {
		key += " (-" + info.ShortName + ")"
	}
	if !info.IsFlag {
		key += " <" + strings.ToUpper(info.Name) + ">"
	}
	return key
}

// Help is a preset --help/-h flag argument.
var Help = NewShort[Flag]('h', "help").Description("Show help message.").Default(FlagFalse)

// isFlagType reports whether T is the Flag type.
func isFlagType[T any]() bool {
	var zero T
	_, ok := any(zero).(Flag)
	return ok
}
