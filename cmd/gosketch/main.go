package main

import "github.com/philipparndt/gosketch/cmd"

func main() {
	cmd.Execute()
}
