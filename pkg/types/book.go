package types

import "fmt"

// Book is the capability set of the book family.
type Book interface {
	Title() string
	Author() string
	Pages() int

	// Read describes the book being read.
	Read() string

	// Summary returns a short fixed-pattern summary naming the title
	// and author.
	Summary() string
}

// BookInfo holds the validated attributes shared by every Book variant.
// Variants embed it and supply Read and Summary.
type BookInfo struct {
	title  string
	author string
	pages  int
}

// NewBookInfo validates pages and returns the attribute set.
// Returns ErrInvalidArgument if pages <= 0.
func NewBookInfo(title, author string, pages int) (BookInfo, error) {
	if pages <= 0 {
		return BookInfo{}, fmt.Errorf("%w: pages must be greater than 0, got %d", ErrInvalidArgument, pages)
	}
	return BookInfo{title: title, author: author, pages: pages}, nil
}

func (b BookInfo) Title() string  { return b.title }
func (b BookInfo) Author() string { return b.author }
func (b BookInfo) Pages() int     { return b.pages }

// ConcreteBook is the single shipped Book variant.
type ConcreteBook struct {
	BookInfo
}

var _ Book = (*ConcreteBook)(nil)

// NewConcreteBook returns a ConcreteBook or ErrInvalidArgument if
// pages <= 0.
func NewConcreteBook(title, author string, pages int) (*ConcreteBook, error) {
	info, err := NewBookInfo(title, author, pages)
	if err != nil {
		return nil, err
	}
	return &ConcreteBook{BookInfo: info}, nil
}

// Read returns `Reading book "<title>" by <author>.`
func (b *ConcreteBook) Read() string { return b.ReadIn(English) }

// Summary returns the English summary.
func (b *ConcreteBook) Summary() string { return b.SummaryIn(English) }

// ReadIn renders Read with the given phrasebook.
func (b *ConcreteBook) ReadIn(p Phrasebook) string {
	return fmt.Sprintf(p.Read, b.title, b.author)
}

// SummaryIn renders Summary with the given phrasebook.
func (b *ConcreteBook) SummaryIn(p Phrasebook) string {
	return fmt.Sprintf(p.Summary, b.title, b.author)
}
