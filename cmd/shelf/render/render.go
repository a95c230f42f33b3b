package render

import "shelf/internal/catalog"

type Renderer interface {
	RenderBookList(view BookListView) string
}

type BookListView struct {
	Items []BookListItem
}

type BookListItem struct {
	Title  string
	Author string
	Year   int
	Status catalog.Status
	Kind   catalog.Kind
	Format string
}

func NewBookListView(books []catalog.Book) BookListView {
	items := make([]BookListItem, len(books))
	for i, b := range books {
		items[i] = BookListItem{
			Title:  b.Title,
			Author: b.Author,
			Year:   b.Year,
			Status: b.Status,
			Kind:   b.Kind,
			Format: b.Format,
		}
	}
	return BookListView{Items: items}
}

func (v BookListView) IsEmpty() bool {
	return len(v.Items) == 0
}
