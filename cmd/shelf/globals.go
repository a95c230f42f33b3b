package main

import (
	"fmt"
	"io"
	"shelf/cmd/shelf/render"
	"shelf/internal/catalog"
	"shelf/internal/config"
	"shelf/internal/storage"

	"github.com/rs/zerolog"
)

type Globals struct {
	Cat    catalog.Catalog
	Store  *storage.TextFile
	In     io.Reader
	Out    io.Writer
	Render render.Renderer
	Log    zerolog.Logger

	// Report and LoadErr describe the load done at startup. The menu
	// shows them; scripted commands only log them.
	Report  storage.LoadReport
	LoadErr error
}

func (g *Globals) save() error {
	if err := g.Store.Save(g.Cat.All()); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// checkLoaded fails when the startup load did not finish. Saving then
// would overwrite the books that were never read.
func (g *Globals) checkLoaded() error {
	if g.LoadErr != nil {
		return fmt.Errorf("%s was not fully loaded, refusing to change it: %w", config.ShortenPath(g.Store.Path()), g.LoadErr)
	}
	return nil
}
