package whisparg

// Parser is a parsing session. It captures the raw argument vector once and
// accumulates a summary of every argument resolved against it, in resolution
// order, so that a help listing can be rendered on demand.
//
// A Parser is not safe for concurrent use; confine each session to one
// goroutine. The declarations themselves are plain values and may be shared
// freely.
type Parser struct {
	args  []string
	infos []ArgumentInfo
}

// NewParser wraps an argument vector whose first element is the program
// invocation path, as in os.Args. The vector is copied and never modified.
func NewParser(args []string) *Parser {
	captured := make([]string, len(args))
	copy(captured, args)
	return &Parser{args: captured}
}

// ProgramName returns the first element of the captured argument vector,
// used verbatim in the help usage line.
func (p *Parser) ProgramName() string {
	if len(p.args) == 0 {
		return ""
	}
	return p.args[0]
}

// Infos returns the summaries of the arguments parsed so far, in the order
// they were parsed.
func (p *Parser) Infos() []ArgumentInfo {
	infos := make([]ArgumentInfo, len(p.infos))
	copy(infos, p.infos)
	return infos
}

// Parse resolves arg against the session's captured argument vector and
// records it for help rendering. It is a function rather than a method
// because methods cannot take type parameters.
func Parse[T Builtin](p *Parser, arg Argument[T]) (Argument[T], error) {
	return ParseFunc(p, arg, converterFor[T]())
}

// ParseFunc is Parse with an explicit converter, for value types outside the
// Builtin set. The argument is recorded for help rendering even when
// resolution fails, so a help listing printed on error still shows it.
func ParseFunc[T any](p *Parser, arg Argument[T], convert ConvertFunc[T]) (Argument[T], error) {
	p.infos = append(p.infos, arg.Info())
	return ResolveFunc(p.args, arg, convert)
}
