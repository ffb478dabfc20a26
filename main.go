package main

import (
	"tesim/cmd"
)

func main() {
	cmd.Execute()
}
