package main

import "github.com/mcoot/armoury/internal/cli"

func main() {
	cli.Execute()
}
