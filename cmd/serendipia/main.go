package main

import (
	"github.com/covidmx/serendipia/internal/cli"
)

func main() {
	cli.Execute()
}
