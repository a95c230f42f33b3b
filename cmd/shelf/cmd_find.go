package main

import "fmt"

type FindCmd struct {
	Title string `arg:"" help:"Title to look up (case-insensitive)"`
}

func (cmd *FindCmd) Run(g *Globals) error {
	b, err := g.Cat.Find(cmd.Title)
	if err != nil {
		return err
	}

	fmt.Fprintln(g.Out, b)
	return nil
}
