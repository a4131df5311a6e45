package main

import "docsplit/internal/cli"

func main() {
	cli.Execute()
}
