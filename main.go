package main

import "github.com/rybkr/keypad/cmd"

func main() {
	cmd.Execute()
}
