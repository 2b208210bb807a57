package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConcreteSocialMediaProfile(t *testing.T) {
	tests := []struct {
		name      string
		followers int
		wantErr   error
	}{
		{name: "zero followers allowed", followers: 0},
		{name: "some followers", followers: 10},
		{name: "negative followers rejected", followers: -1, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewConcreteSocialMediaProfile("alice", tt.followers)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", p.Username())
			assert.Equal(t, tt.followers, p.Followers())
		})
	}
}

func TestConcreteSocialMediaProfilePostUpdate(t *testing.T) {
	p, err := NewConcreteSocialMediaProfile("alice", 10)
	require.NoError(t, err)

	messages := []string{"hello", "", "100% done", "multi\nline"}
	for _, m := range messages {
		got := p.PostUpdate(m)
		assert.Contains(t, got, "alice")
		assert.Contains(t, got, m)
	}
	assert.Equal(t, "Post from alice: hello", p.PostUpdate("hello"))
	assert.Equal(t, "Публикация от alice: hello", p.PostUpdateIn(Russian, "hello"))
	assert.Equal(t, 10, p.Followers(), "PostUpdate must not change followers")
}

func TestConcreteSocialMediaProfileInteract(t *testing.T) {
	p, err := NewConcreteSocialMediaProfile("bob", 0)
	require.NoError(t, err)

	assert.Equal(t, "bob liked a post.", p.Interact("liked a post"))
	assert.Equal(t, "bob %v.", p.Interact("%v"), "action is echoed verbatim")
	assert.Equal(t, 0, p.Followers())
	assert.Equal(t, "bob", p.Username())
}
