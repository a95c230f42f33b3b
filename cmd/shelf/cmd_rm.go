package main

import "fmt"

type RmCmd struct {
	Title string `arg:"" help:"Title of the book to remove"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	if err := g.checkLoaded(); err != nil {
		return err
	}

	if err := g.Cat.Remove(cmd.Title); err != nil {
		return fmt.Errorf("failed to remove book: %w", err)
	}

	if err := g.save(); err != nil {
		return err
	}

	g.Log.Info().Str("title", cmd.Title).Msg("book removed")
	fmt.Fprintf(g.Out, "Removed: %s\n", cmd.Title)
	return nil
}
