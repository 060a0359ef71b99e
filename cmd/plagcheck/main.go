package main

import "plagcheck/internal/cli"

func main() {
	cli.Execute()
}
