package main

import "variant-match/internal/cli"

func main() {
	cli.Execute()
}
