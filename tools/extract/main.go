package main

import (
	"flag"
)

func main() {
	subcommand := flag.String("cmd", "", "Subcommand to run (e.g. 'books', 'aliases')")
	out := flag.String("out", "./canon/index", "Output directory for index files")
	flag.Parse()

	switch *subcommand {
	case "books":
		MainBooks(*out)
	case "aliases":
		MainAliases(*out)
	default:
		println("Please provide a valid subcommand using -cmd flag (e.g. -cmd=books or -cmd=aliases)")
	}
}
