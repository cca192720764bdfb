package main

import "github.com/mcoot/jewelmatch/internal/cli"

func main() {
	cli.Execute()
}
