package main

import "github.com/katalvlaran/wick/cmd/wick/cmd"

func main() {
	cmd.Execute()
}
