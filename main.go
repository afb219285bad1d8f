package main

import (
	"github.com/jjtimmons/dnakit/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
