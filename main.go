package main

import "github.com/ArnaudCalmettes/morphos/cmd"

func main() {
	cmd.Execute()
}
