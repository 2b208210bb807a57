package types

// Phrasebook holds the fmt patterns used to render entity behaviors in one
// language. Every pattern takes its arguments as %s verbs in a fixed order:
//
//	Read, Summary:  title, author
//	Grow, ProduceFruit: species
//	PostUpdate:     username, message
//	Interact:       username, action
type Phrasebook struct {
	Name         string
	Read         string
	Summary      string
	Grow         string
	ProduceFruit string
	PostUpdate   string
	Interact     string
}

// English is the default phrasebook.
var English = Phrasebook{
	Name:         "en",
	Read:         `Reading book "%s" by %s.`,
	Summary:      `Book "%s" was written by %s and explores an important theme.`,
	Grow:         "The %s tree keeps growing!",
	ProduceFruit: "The %s tree bears fruit.",
	PostUpdate:   "Post from %s: %s",
	Interact:     "%s %s.",
}

// Russian reproduces the wording of the original course material.
var Russian = Phrasebook{
	Name:         "ru",
	Read:         `Чтение книги "%s" от %s.`,
	Summary:      `Книга "%s" написана %s, рассказывает о важной теме.`,
	Grow:         "Дерево %s продолжает расти!",
	ProduceFruit: "Дерево %s приносит плоды.",
	PostUpdate:   "Публикация от %s: %s",
	Interact:     "%s %s.",
}
