package main

import "github.com/notargets/quadconv/cmd"

func main() {
	cmd.Execute()
}
