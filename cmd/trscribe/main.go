package main

import "github.com/tkaraca/trscribe/internal/adapters/cli"

func main() {
	cli.Execute()
}
