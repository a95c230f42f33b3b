package main

import (
	"errors"
	"fmt"
	"shelf/cmd/shelf/render"
	"shelf/internal/catalog"

	"gopkg.in/yaml.v3"
)

type ListCmd struct {
	Plain bool `short:"p" xor:"output" help:"One line per book"`
	YAML  bool `name:"yaml" xor:"output" help:"Print the collection as YAML"`
}

type listDocument struct {
	Books []catalog.Book `yaml:"books"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	if cmd.YAML {
		return cmd.printYAML(g)
	}

	books, err := g.Cat.List()
	if errors.Is(err, catalog.ErrEmpty) {
		fmt.Fprintln(g.Out, "The collection is empty.")
		return nil
	}
	if err != nil {
		return err
	}

	if cmd.Plain {
		writePlainList(g.Out, books)
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderBookList(render.NewBookListView(books)))
	return nil
}

func (cmd *ListCmd) printYAML(g *Globals) error {
	enc := yaml.NewEncoder(g.Out)
	enc.SetIndent(2)
	if err := enc.Encode(listDocument{Books: g.Cat.All()}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}
