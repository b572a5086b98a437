package main

import "github.com/arpent/strum/cmd"

func main() {
	cmd.Execute()
}
