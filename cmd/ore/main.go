package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/eigerco/ore/internal/constants"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ore"
	app.Usage = "run a local ORE ledger"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "env-file",
			Usage: "dotenv file with ORE_* settings",
		},
	}
	app.Commands = commands()
	return app
}

func main() {
	if err := constants.CheckAddresses(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
