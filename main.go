package main

import "github.com/nsyszr/festival/cmd"

func main() {
	cmd.Execute()
}
