package main

import "github.com/nachtlabs/git-nacht/internal/cli"

func main() {
	cli.Execute()
}
