package main

import "github.com/gaurav-prasanna/deckpipe/cmd"

func main() {
	cmd.Execute()
}
