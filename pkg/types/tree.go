package types

import "fmt"

// Tree is the capability set of the tree family.
type Tree interface {
	Species() string
	Age() int

	// Grow notes that the tree keeps growing. It does not change Age.
	Grow() string

	// ProduceFruit notes that the tree bears fruit.
	ProduceFruit() string
}

// TreeInfo holds the validated attributes shared by every Tree variant.
type TreeInfo struct {
	species string
	age     int
}

// NewTreeInfo validates age and returns the attribute set.
// Returns ErrInvalidArgument if age <= 0.
func NewTreeInfo(species string, age int) (TreeInfo, error) {
	if age <= 0 {
		return TreeInfo{}, fmt.Errorf("%w: age must be greater than 0, got %d", ErrInvalidArgument, age)
	}
	return TreeInfo{species: species, age: age}, nil
}

func (t TreeInfo) Species() string { return t.species }
func (t TreeInfo) Age() int        { return t.age }

// ConcreteTree is the single shipped Tree variant.
type ConcreteTree struct {
	TreeInfo
}

var _ Tree = (*ConcreteTree)(nil)

// NewConcreteTree returns a ConcreteTree or ErrInvalidArgument if age <= 0.
func NewConcreteTree(species string, age int) (*ConcreteTree, error) {
	info, err := NewTreeInfo(species, age)
	if err != nil {
		return nil, err
	}
	return &ConcreteTree{TreeInfo: info}, nil
}

// Grow returns "The <species> tree keeps growing!".
func (t *ConcreteTree) Grow() string { return t.GrowIn(English) }

// ProduceFruit returns "The <species> tree bears fruit.".
func (t *ConcreteTree) ProduceFruit() string { return t.ProduceFruitIn(English) }

// GrowIn renders Grow with the given phrasebook.
func (t *ConcreteTree) GrowIn(p Phrasebook) string {
	return fmt.Sprintf(p.Grow, t.species)
}

// ProduceFruitIn renders ProduceFruit with the given phrasebook.
func (t *ConcreteTree) ProduceFruitIn(p Phrasebook) string {
	return fmt.Sprintf(p.ProduceFruit, t.species)
}
