// Command tcmd is a batch delimited-table command processor: it loads a
// table from a file, runs a selector/mutation command stream against it,
// and writes the result back to the same file.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/wrycode/tcmd/internal/cli"
	"github.com/wrycode/tcmd/internal/command"
	"github.com/wrycode/tcmd/internal/engine"
	"github.com/wrycode/tcmd/internal/exitcode"
	"github.com/wrycode/tcmd/internal/table"
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs()))
}

func run(argv []string, fsys afero.Fs) int {
	args, err := cli.Parse(argv)
	if err != nil {
		return fatal(err)
	}

	fmt.Fprintln(os.Stdout, args.InputFile)

	in, err := fsys.Open(args.InputFile)
	if err != nil {
		return fatal(exitcode.Wrap(exitcode.FileError, err))
	}
	t, err := table.Load(in, args.Delims)
	in.Close()
	if err != nil {
		return fatal(err)
	}

	rawCmds, err := command.Source(fsys, args.CommandSpec)
	if err != nil {
		return fatal(err)
	}
	cmds := command.ParseAll(rawCmds)

	if err := engine.Run(t, cmds, os.Stdout); err != nil {
		return fatal(err)
	}

	out, err := fsys.Create(args.InputFile)
	if err != nil {
		return fatal(exitcode.Wrap(exitcode.FileError, err))
	}
	defer out.Close()
	if err := table.Save(out, t); err != nil {
		return fatal(err)
	}

	return int(exitcode.OK)
}

func fatal(err error) int {
	log.Println(err)
	return int(exitcode.CodeOf(err))
}
