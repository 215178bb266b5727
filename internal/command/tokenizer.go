// Package command implements the command tokenizer: reading the raw command
// source (a literal ';'-separated string, or a "-cPATH" file reference),
// then splitting each resulting string into a selector token or a
// (function, argument) pair.
package command

import (
	"bufio"
	"strings"

	"github.com/spf13/afero"
	"github.com/wrycode/tcmd/internal/exitcode"
	"github.com/wrycode/tcmd/internal/scanner"
)

// Command is either a selector token (brackets, Function holds the whole
// bracketed string) or an action command split into a function name and an
// optional argument.
type Command struct {
	Raw      string
	Selector bool
	Function string
	Arg      string
}

// Source returns the raw command strings named by commandSpec: either the
// lines of the file at PATH, when commandSpec is "-cPATH", or the
// ';'-delimited pieces of the literal string otherwise. The "-c" prefix is
// stripped before the path is opened.
func Source(fsys afero.Fs, commandSpec string) ([]string, error) {
	if strings.HasPrefix(commandSpec, "-c") {
		path := strings.TrimPrefix(commandSpec, "-c")
		return readCommandFile(fsys, path)
	}
	return splitLiteral(commandSpec), nil
}

func splitLiteral(spec string) []string {
	if spec == "" {
		return nil
	}
	b := []byte(spec)
	n := scanner.Count(b, ';', true) + 1
	out := make([]string, n)
	for i := 0; i < n; i++ {
		seg, _ := scanner.Split(b, ';', i, true)
		out[i] = string(seg)
	}
	return out
}

func readCommandFile(fsys afero.Fs, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, exitcode.Wrap(exitcode.FileError, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, exitcode.Wrap(exitcode.FileError, err)
	}
	return out, nil
}

// Parse splits a single raw command string into a Command. A command whose
// trimmed form both begins with '[' and ends with ']' is a selector token;
// otherwise it is split once on the first unquoted, unescaped space into a
// function name and argument.
func Parse(raw string) Command {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return Command{Raw: s, Selector: true, Function: s}
	}

	b := []byte(s)
	pos, ok := scanner.Position(b, ' ', 0, false)
	if !ok {
		return Command{Raw: s, Function: s}
	}
	return Command{Raw: s, Function: s[:pos], Arg: s[pos+1:]}
}

// ParseAll parses every raw command string in order.
func ParseAll(rawCommands []string) []Command {
	out := make([]Command, len(rawCommands))
	for i, raw := range rawCommands {
		out[i] = Parse(raw)
	}
	return out
}
