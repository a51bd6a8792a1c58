package main

import (
	"log"

	"github.com/danholt/bundlegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
