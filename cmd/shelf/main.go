package main

import (
	"fmt"
	"os"
	"shelf/cmd/shelf/render"
	"shelf/internal/catalog"
	"shelf/internal/config"
	"shelf/internal/logging"
	"shelf/internal/storage"
	"shelf/internal/util"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Menu   MenuCmd   `cmd:"" default:"1" help:"Interactive menu (default)"`
	Add    AddCmd    `cmd:"" aliases:"a" help:"Add a book to the collection"`
	List   ListCmd   `cmd:"" aliases:"ls" help:"List books in the collection"`
	Rm     RmCmd     `cmd:"" help:"Remove a book from the collection"`
	Find   FindCmd   `cmd:"" help:"Find a book by title"`
	Loan   LoanCmd   `cmd:"" help:"Mark a book as loaned"`
	Return ReturnCmd `cmd:"" help:"Mark a loaned book as available again"`

	File     string `name:"file" short:"f" default:"${file}" help:"Path to the stock file"`
	LogLevel string `name:"log-level" default:"${log_level}" env:"SHELF_LOG_LEVEL" help:"Diagnostics level (debug, info, warn, error)"`

	formats catalog.FormatSet `kong:"-"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	path, err := config.ExpandPath(c.File)
	if err != nil {
		return fmt.Errorf("invalid catalog path: %w", err)
	}

	log := logging.New(os.Stderr, c.LogLevel)
	store := storage.NewTextFile(path,
		storage.WithFormats(c.formats),
		storage.WithLogger(log),
	)

	cat := catalog.NewMemoryCatalog()
	report, err := store.Load(cat)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to load catalog")
	}

	globals := &Globals{
		Cat:     cat,
		Store:   store,
		In:      os.Stdin,
		Out:     os.Stdout,
		Render:  render.NewLipglossRendererAuto(os.Stdout),
		Log:     log,
		Report:  report,
		LoadErr: err,
	}
	ctx.Bind(globals)
	return nil
}

func vars(cfg config.Config) kong.Vars {
	return kong.Vars{
		"file":      cfg.File,
		"log_level": cfg.LogLevel,
	}
}

func main() {
	cfg := assert.Success(config.Load(config.DefaultConfigPath()))

	cli := CLI{formats: cfg.FormatSet()}
	ctx := kong.Parse(&cli,
		kong.Name("shelf"),
		kong.Description("Personal book collection tracker"),
		kong.UsageOnError(),
		vars(cfg),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
