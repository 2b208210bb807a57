package types

import "fmt"

// SocialMediaProfile is the capability set of the profile family.
type SocialMediaProfile interface {
	Username() string
	Followers() int

	// PostUpdate combines the username with message. Any text is
	// accepted, including the empty string.
	PostUpdate(message string) string

	// Interact combines the username with an action label such as
	// "liked a post". The action is echoed verbatim.
	Interact(action string) string
}

// ProfileInfo holds the validated attributes shared by every
// SocialMediaProfile variant.
type ProfileInfo struct {
	username  string
	followers int
}

// NewProfileInfo validates followers and returns the attribute set.
// Returns ErrInvalidArgument if followers < 0. Zero is valid.
func NewProfileInfo(username string, followers int) (ProfileInfo, error) {
	if followers < 0 {
		return ProfileInfo{}, fmt.Errorf("%w: followers must not be negative, got %d", ErrInvalidArgument, followers)
	}
	return ProfileInfo{username: username, followers: followers}, nil
}

func (p ProfileInfo) Username() string { return p.username }
func (p ProfileInfo) Followers() int   { return p.followers }

// ConcreteSocialMediaProfile is the single shipped SocialMediaProfile
// variant.
type ConcreteSocialMediaProfile struct {
	ProfileInfo
}

var _ SocialMediaProfile = (*ConcreteSocialMediaProfile)(nil)

// NewConcreteSocialMediaProfile returns a profile or ErrInvalidArgument if
// followers < 0.
func NewConcreteSocialMediaProfile(username string, followers int) (*ConcreteSocialMediaProfile, error) {
	info, err := NewProfileInfo(username, followers)
	if err != nil {
		return nil, err
	}
	return &ConcreteSocialMediaProfile{ProfileInfo: info}, nil
}

// PostUpdate returns "Post from <username>: <message>".
func (p *ConcreteSocialMediaProfile) PostUpdate(message string) string {
	return p.PostUpdateIn(English, message)
}

// Interact returns "<username> <action>.".
func (p *ConcreteSocialMediaProfile) Interact(action string) string {
	return p.InteractIn(English, action)
}

// PostUpdateIn renders PostUpdate with the given phrasebook.
func (p *ConcreteSocialMediaProfile) PostUpdateIn(pb Phrasebook, message string) string {
	return fmt.Sprintf(pb.PostUpdate, p.username, message)
}

// InteractIn renders Interact with the given phrasebook.
func (p *ConcreteSocialMediaProfile) InteractIn(pb Phrasebook, action string) string {
	return fmt.Sprintf(pb.Interact, p.username, action)
}
