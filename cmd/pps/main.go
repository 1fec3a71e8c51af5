// Package main is the pps command itself.
package main

import (
	"log"
	"os"

	"github.com/majenkotech/gpio-pic32/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
