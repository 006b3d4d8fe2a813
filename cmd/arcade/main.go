package main

import (
	"github.com/playably/arcade/internal/cli"
)

func main() {
	cli.Execute()
}
