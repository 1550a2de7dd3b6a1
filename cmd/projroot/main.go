package main

import "projroot/internal/cli"

func main() {
	cli.Execute()
}
