package main

import "github.com/emzola/bookxchange/internal/cli"

func main() {
	cli.Execute()
}
