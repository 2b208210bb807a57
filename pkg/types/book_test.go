package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConcreteBook(t *testing.T) {
	tests := []struct {
		name    string
		pages   int
		wantErr error
	}{
		{name: "minimum valid pages", pages: 1},
		{name: "typical page count", pages: 1225},
		{name: "zero pages rejected", pages: 0, wantErr: ErrInvalidArgument},
		{name: "negative pages rejected", pages: -5, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewConcreteBook("War and Peace", "Tolstoy", tt.pages)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pages, b.Pages())
			assert.Equal(t, "War and Peace", b.Title())
			assert.Equal(t, "Tolstoy", b.Author())
		})
	}
}

func TestConcreteBookRead(t *testing.T) {
	b, err := NewConcreteBook("War and Peace", "Tolstoy", 1225)
	require.NoError(t, err)

	assert.Equal(t, `Reading book "War and Peace" by Tolstoy.`, b.Read())
	assert.Equal(t, b.Read(), b.Read(), "Read must be deterministic")
}

func TestConcreteBookSummary(t *testing.T) {
	b, err := NewConcreteBook("War and Peace", "Tolstoy", 1225)
	require.NoError(t, err)

	got := b.Summary()
	assert.Equal(t, `Book "War and Peace" was written by Tolstoy and explores an important theme.`, got)
	assert.Equal(t, got, b.Summary(), "Summary must be deterministic")
}

func TestConcreteBookRussian(t *testing.T) {
	b, err := NewConcreteBook("Война и мир", "Толстой", 1225)
	require.NoError(t, err)

	assert.Equal(t, `Чтение книги "Война и мир" от Толстой.`, b.ReadIn(Russian))
	assert.Equal(t, `Книга "Война и мир" написана Толстой, рассказывает о важной теме.`, b.SummaryIn(Russian))
}

func TestBookInterface(t *testing.T) {
	cb, err := NewConcreteBook("Dune", "Herbert", 412)
	require.NoError(t, err)

	var b Book = cb

	assert.Contains(t, b.Read(), "Dune")
	assert.Contains(t, b.Summary(), "Herbert")
}
