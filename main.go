package main

import "github.com/notargets/difops/cmd"

func main() {
	cmd.Execute()
}
