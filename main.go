package main

import (
	"github.com/rminderhoud/Revise/cli"
)

func main() {
	cli.Start()
}
