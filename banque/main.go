package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/banque/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Shell completion. Returns immediately unless the shell is asking.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
