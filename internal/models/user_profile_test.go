package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuestProfile(t *testing.T) {
	guest := GuestProfile()

	assert.Equal(t, GuestID, guest.ID)
	assert.True(t, guest.IsGuest())
	assert.False(t, guest.IsRegistered)
	assert.Empty(t, guest.Name)
	assert.Equal(t, DefaultAvatarURL, guest.AvatarURL)
}

func TestUserProfile_Merge(t *testing.T) {
	profile := UserProfile{
		ID:     "user-1",
		Name:   "Maria",
		Church: "Igreja Batista Central",
		Role:   "Professora",
	}

	newName := "Maria Souza"
	merged := profile.Merge(UserProfilePatch{Name: &newName})

	assert.Equal(t, "Maria Souza", merged.Name)
	// Untouched fields survive the merge
	assert.Equal(t, "Igreja Batista Central", merged.Church)
	assert.Equal(t, "Professora", merged.Role)
	// The receiver is not mutated
	assert.Equal(t, "Maria", profile.Name)
}

func TestUserProfile_MergeEmptyPatch(t *testing.T) {
	profile := UserProfile{ID: "user-1", Name: "Maria", IsRegistered: true}

	merged := profile.Merge(UserProfilePatch{})
	assert.Equal(t, profile, merged)
}

func TestUserProfile_MergeCanSetEmptyString(t *testing.T) {
	profile := UserProfile{ID: "user-1", Age: "34"}

	empty := ""
	merged := profile.Merge(UserProfilePatch{Age: &empty})
	assert.Empty(t, merged.Age)
}

func TestRegistrationInput_ResolvedChurch(t *testing.T) {
	input := RegistrationInput{Church: "Igreja Presbiteriana"}
	assert.Equal(t, "Igreja Presbiteriana", input.ResolvedChurch())

	// Selecting "Nova Igreja" means the user typed their own church name
	input = RegistrationInput{Church: "Nova Igreja", CustomChurch: "Comunidade da Graça"}
	assert.Equal(t, "Comunidade da Graça", input.ResolvedChurch())
}

func TestNewRegistrationDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.FixedZone("BRT", -3*60*60))

	date := NewRegistrationDate(now)
	assert.Equal(t, "2024-03-15T13:30:00Z", date)

	parsed, err := time.Parse(time.RFC3339, date)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(now))
}
