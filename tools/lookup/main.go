package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Detect  DetectCmd  `cmd:"" help:"Classify a query as reference, book suggestions, or free text"`
	Suggest SuggestCmd `cmd:"" help:"List books matching a name prefix"`
	Search  SearchCmd  `cmd:"" help:"Run the full resolution pipeline against a corpus"`
}

func main() {
	kongCtx := kong.Parse(
		&CLI{},
		kong.Name("verseref"),
		kong.Description("Verse reference lookup tool"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if err := kongCtx.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
