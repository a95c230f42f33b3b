package main

import "fmt"

type LoanCmd struct {
	Title string `arg:"" help:"Title of the book to lend"`
}

func (cmd *LoanCmd) Run(g *Globals) error {
	if err := g.checkLoaded(); err != nil {
		return err
	}

	if err := g.Cat.MarkLoaned(cmd.Title); err != nil {
		return fmt.Errorf("failed to loan book: %w", err)
	}

	if err := g.save(); err != nil {
		return err
	}

	g.Log.Info().Str("title", cmd.Title).Msg("book loaned")
	fmt.Fprintf(g.Out, "Loaned: %s\n", cmd.Title)
	return nil
}

type ReturnCmd struct {
	Title string `arg:"" help:"Title of the book being returned"`
}

func (cmd *ReturnCmd) Run(g *Globals) error {
	if err := g.checkLoaded(); err != nil {
		return err
	}

	if err := g.Cat.Return(cmd.Title); err != nil {
		return fmt.Errorf("failed to return book: %w", err)
	}

	if err := g.save(); err != nil {
		return err
	}

	g.Log.Info().Str("title", cmd.Title).Msg("book returned")
	fmt.Fprintf(g.Out, "Returned: %s\n", cmd.Title)
	return nil
}
