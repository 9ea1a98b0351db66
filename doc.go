/*
Package whisparg is a lightweight command-line argument parser for
short-lived CLI tools: declare typed arguments one by one, resolve each one
against os.Args, and render a help listing on demand.

Example

Greet program:

		package main

		import (
			"fmt"
			"os"

			"github.com/idofront/whisparg"
		)

		func main() {
			parser := whisparg.NewParser(os.Args)

			help, _ := whisparg.Parse(parser, whisparg.Help)
			length, err := whisparg.Parse(parser, whisparg.NewShort[uint8]('l', "length").
				Description("How many times to print the message.").
				Default(1))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
			message, err := whisparg.Parse(parser, whisparg.New[string]("message").
				Description("The message to print.").
				Default("Hello, world!"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}

			if v, _ := help.Value(); v.Bool() {
				parser.WriteHelp(os.Stdout)
				return
			}
			n, _ := length.Value()
			m, _ := message.Value()
			for i := uint8(0); i < n; i++ {
				fmt.Println(m)
			}
		}

Usage:

		$ greet --help
		Usage: greet [options]
		Options:
		--help (-h)             Show help message.
		--length (-l) <LENGTH>  How many times to print the message.
		--message <MESSAGE>     The message to print.
		$ greet -l 2 --message Hey
		Hey
		Hey

Arguments

Each argument is declared as a value of the generic Argument type. Builder
methods return updated copies, so declarations can be built fluently and
shared without aliasing:

		whisparg.NewShort[uint16]('w', "width").
			Description("Output width in columns.").
			Default(80).
			Required(false)

Resolution scans the full token vector for "-s" (short form, exactly two
characters) or "--name" (long form). Non-flag arguments take the next token
as their value; the Flag type is set true by the switch alone and never
consumes a token. When a switch repeats, the last occurrence wins.

Value Types

The following types are converted automatically:

		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		string, bool, Flag

Integers are parsed base-10 and range-checked. bool accepts "true", "false",
or an integer (non-zero meaning true). Any other type is resolved with
ResolveFunc or ParseFunc and an explicit ConvertFunc; forgetting the
converter fails to compile rather than at run time.

Errors

All failures are returned synchronously as *Error values carrying a
machine-readable kind: MissingValue (a non-flag switch with no following
token), RequiredMissing (a required argument never supplied, regardless of
default), or InvalidValue (the captured token did not convert; the cause is
available via errors.Unwrap). The package never writes output except when
asked to render help.
*/
package whisparg
