package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"HCL config file with a converter block" env:"ACPCSTARS_CONFIG" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)" env:"ACPCSTARS_LOG_LEVEL"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Convert ConvertCmd       `cmd:"" help:"Convert ACPC logs to PokerStars hand histories"`
	PHH     PHHCmd           `cmd:"phh" help:"Convert ACPC logs to PHH hand histories"`
	Inspect InspectCmd       `cmd:"" help:"Replay ACPC logs and report the first invalid hand"`
}

func main() {
	// A .env file may provide ACPCSTARS_* defaults; a missing one is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("acpcstars"),
		kong.Description("Convert ACPC poker logs into PokerStars hand histories"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
