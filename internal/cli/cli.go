// Package cli parses the command line described in spec.md §6:
// "PROGRAM [-d DELIMS] COMMAND_SPEC INPUT_FILE". The scan is hand-rolled
// rather than built on a general-purpose flag library because COMMAND_SPEC
// itself may legally be the string "-cPATH" — a permuting flag parser
// would try to interpret that token as an unrecognized flag instead of a
// positional argument. Only argv[0] is ever inspected for "-d".
package cli

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wrycode/tcmd/internal/exitcode"
)

// forbiddenDelimiterBytes are the bytes a delimiter alphabet may never
// contain, since they are already meaningful to the line parser.
const forbiddenDelimiterBytes = `"'\`

// Args holds the parsed command line, ready to hand to the loader and the
// command tokenizer.
type Args struct {
	Delims []byte `validate:"required"`
	// CommandSpec has no "required" tag: an empty literal command string
	// is legal per §4.D ("an empty literal string yields zero commands"),
	// exercised by scenario S1's minimal round trip. The positional-count
	// check in Parse already guarantees the argument was supplied at all.
	CommandSpec string
	InputFile   string `validate:"required"`
}

// Parse parses argv (the program's arguments, excluding argv[0]) into an
// Args, applying the §6 defaults and validating the delimiter alphabet and
// required positionals.
func Parse(argv []string) (*Args, error) {
	delims := []byte(" ")
	rest := argv

	if len(argv) > 0 && argv[0] == "-d" {
		if len(argv) < 2 {
			return nil, exitcode.New(exitcode.MissingArgs, "-d requires a delimiter argument")
		}
		delims = []byte(argv[1])
		rest = argv[2:]
	}

	if len(rest) != 2 {
		return nil, exitcode.New(exitcode.MissingArgs, "expected COMMAND_SPEC and INPUT_FILE, got %d positional argument(s)", len(rest))
	}

	if err := validateDelims(delims); err != nil {
		return nil, err
	}

	a := &Args{Delims: delims, CommandSpec: rest[0], InputFile: rest[1]}
	if err := validateStruct(a); err != nil {
		return nil, exitcode.Wrap(exitcode.MissingArgs, err)
	}
	return a, nil
}

func validateDelims(d []byte) error {
	if len(d) == 0 {
		return exitcode.New(exitcode.InvalidValue, "delimiter alphabet must not be empty")
	}
	if strings.ContainsAny(string(d), forbiddenDelimiterBytes) {
		return exitcode.New(exitcode.InvalidDelimiter, "delimiter alphabet %q must not contain %s", d, forbiddenDelimiterBytes)
	}
	return nil
}

func validateStruct(a *Args) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.ToLower(fld.Name)
	})
	return validate.Struct(a)
}
