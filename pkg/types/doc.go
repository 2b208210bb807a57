// Package types defines the three entity families of the menagerie
// (books, trees, social media profiles), their phrasebooks, the
// configuration struct, and the standard error values.
//
// Each family is an interface naming its two behaviors, an embeddable
// base struct that holds the validated attributes, and one concrete
// variant. Entities are immutable once constructed.
package types
