package main

import (
	"github.com/Alturino/inventory/cmd"
)

func main() {
	cmd.Start()
}
