package selftest

import (
	"fmt"

	"github.com/mesh-intelligence/menagerie/pkg/types"
)

// expectations holds the documented outputs of the scenario examples for one
// phrasebook.
type expectations struct {
	read, summary, grow, fruit, post, interact string
}

// documented lists the literal outputs for the phrasebooks shipped in
// pkg/types. Phrasebooks not listed here are checked against their own
// patterns.
var documented = map[string]expectations{
	"en": {
		read:     `Reading book "War and Peace" by Tolstoy.`,
		summary:  `Book "War and Peace" was written by Tolstoy and explores an important theme.`,
		grow:     "The Oak tree keeps growing!",
		fruit:    "The Oak tree bears fruit.",
		post:     "Post from alice: hello",
		interact: "alice liked a post.",
	},
	"ru": {
		read:     `Чтение книги "War and Peace" от Tolstoy.`,
		summary:  `Книга "War and Peace" написана Tolstoy, рассказывает о важной теме.`,
		grow:     "Дерево Oak продолжает расти!",
		fruit:    "Дерево Oak приносит плоды.",
		post:     "Публикация от alice: hello",
		interact: "alice liked a post.",
	},
}

func expectationsFor(pb types.Phrasebook) expectations {
	if e, ok := documented[pb.Name]; ok {
		return e
	}
	return expectations{
		read:     fmt.Sprintf(pb.Read, "War and Peace", "Tolstoy"),
		summary:  fmt.Sprintf(pb.Summary, "War and Peace", "Tolstoy"),
		grow:     fmt.Sprintf(pb.Grow, "Oak"),
		fruit:    fmt.Sprintf(pb.ProduceFruit, "Oak"),
		post:     fmt.Sprintf(pb.PostUpdate, "alice", "hello"),
		interact: fmt.Sprintf(pb.Interact, "alice", "liked a post"),
	}
}

// Examples returns the documented examples rendered with pb: the three
// end-to-end scenarios and the constructor boundaries.
func Examples(pb types.Phrasebook) []Example {
	want := expectationsFor(pb)

	book := func(pages int) (*types.ConcreteBook, error) {
		return types.NewConcreteBook("War and Peace", "Tolstoy", pages)
	}
	tree := func(age int) (*types.ConcreteTree, error) {
		return types.NewConcreteTree("Oak", age)
	}
	profile := func(followers int) (*types.ConcreteSocialMediaProfile, error) {
		return types.NewConcreteSocialMediaProfile("alice", followers)
	}

	return []Example{
		{
			Name: "book/read",
			Want: want.read,
			Run: func() (string, error) {
				b, err := book(1225)
				if err != nil {
					return "", err
				}
				return b.ReadIn(pb), nil
			},
		},
		{
			Name: "book/summary",
			Want: want.summary,
			Run: func() (string, error) {
				b, err := book(1225)
				if err != nil {
					return "", err
				}
				return b.SummaryIn(pb), nil
			},
		},
		{
			Name: "book/minimum-pages",
			Want: want.read,
			Run: func() (string, error) {
				b, err := book(1)
				if err != nil {
					return "", err
				}
				return b.ReadIn(pb), nil
			},
		},
		{
			Name:    "book/zero-pages",
			WantErr: types.ErrInvalidArgument,
			Run: func() (string, error) {
				_, err := book(0)
				return "", err
			},
		},
		{
			Name: "tree/grow",
			Want: want.grow,
			Run: func() (string, error) {
				t, err := tree(50)
				if err != nil {
					return "", err
				}
				return t.GrowIn(pb), nil
			},
		},
		{
			Name: "tree/produce-fruit",
			Want: want.fruit,
			Run: func() (string, error) {
				t, err := tree(50)
				if err != nil {
					return "", err
				}
				return t.ProduceFruitIn(pb), nil
			},
		},
		{
			Name:    "tree/zero-age",
			WantErr: types.ErrInvalidArgument,
			Run: func() (string, error) {
				_, err := tree(0)
				return "", err
			},
		},
		{
			Name: "profile/post-update",
			Want: want.post,
			Run: func() (string, error) {
				p, err := profile(10)
				if err != nil {
					return "", err
				}
				return p.PostUpdateIn(pb, "hello"), nil
			},
		},
		{
			Name: "profile/interact",
			Want: want.interact,
			Run: func() (string, error) {
				p, err := profile(10)
				if err != nil {
					return "", err
				}
				return p.InteractIn(pb, "liked a post"), nil
			},
		},
		{
			Name: "profile/zero-followers",
			Want: want.post,
			Run: func() (string, error) {
				p, err := profile(0)
				if err != nil {
					return "", err
				}
				return p.PostUpdateIn(pb, "hello"), nil
			},
		},
		{
			Name:    "profile/negative-followers",
			WantErr: types.ErrInvalidArgument,
			Run: func() (string, error) {
				_, err := profile(-1)
				return "", err
			},
		},
	}
}
