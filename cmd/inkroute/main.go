package main

import "github.com/inkroute/inkroute/internal/cli"

func main() {
	cli.Execute()
}
