package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConcreteTree(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		wantErr error
	}{
		{name: "one year old", age: 1},
		{name: "old oak", age: 50},
		{name: "zero age rejected", age: 0, wantErr: ErrInvalidArgument},
		{name: "negative age rejected", age: -1, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewConcreteTree("Oak", tt.age)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Oak", tr.Species())
			assert.Equal(t, tt.age, tr.Age())
		})
	}
}

func TestConcreteTreeBehaviors(t *testing.T) {
	tr, err := NewConcreteTree("Oak", 50)
	require.NoError(t, err)

	assert.Equal(t, "The Oak tree keeps growing!", tr.Grow())
	assert.Equal(t, "The Oak tree bears fruit.", tr.ProduceFruit())
	assert.Equal(t, "Дерево Oak продолжает расти!", tr.GrowIn(Russian))
	assert.Equal(t, "Дерево Oak приносит плоды.", tr.ProduceFruitIn(Russian))
}

func TestConcreteTreeGrowKeepsAge(t *testing.T) {
	tr, err := NewConcreteTree("Apple", 3)
	require.NoError(t, err)

	tr.Grow()
	tr.Grow()
	assert.Equal(t, 3, tr.Age())
}
