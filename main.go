package main

import (
	"osintify/cli"
)

func main() {
	cli.Start()
}
