package whisparg

// Flag is a boolean whose truth is signaled by the mere presence of its
// switch on the command line. Unlike a bool argument, which needs an explicit
// "true" or "false" value token, a Flag argument never consumes a value
// token; the switch itself is the value. The zero value is false.
type Flag bool

// Canonical Flag values.
const (
	FlagTrue  Flag = true
	FlagFalse Flag = false
)

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool {
	return bool(f)
}

func (f Flag) String() string {
	if f {
		return "true"
	}
	return "false"
}
