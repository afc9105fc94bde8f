package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/verseref/tools/util"
)

type CLI struct {
	Canon    CanonCmd    `cmd:"" help:"Validate corpus chapter files against the canonical book table"`
	Table    TableCmd    `cmd:"" help:"Check book table invariants (alias completeness, slug uniqueness)"`
	Manifest ManifestCmd `cmd:"" help:"Verify raw source files against a SHA256MANIFEST"`
}

func main() {
	stop := make(chan bool)
	kongCtx := kong.Parse(
		&CLI{},
		kong.Name("verseref-verify"),
		kong.Description("Verse corpus and book table verification tool"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Bind(stop),
	)

	go util.Spinner("verifying", stop)

	if err := kongCtx.Run(); err != nil {
		closeOnce(stop)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	closeOnce(stop)
}

// closeOnce stops the spinner if the command's Run did not already.
func closeOnce(stop chan bool) {
	select {
	case <-stop:
	default:
		close(stop)
	}
}
