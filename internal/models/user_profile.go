package models

import "time"

// GuestID is the reserved user id for an unauthenticated, unregistered session.
const GuestID = "guest"

// DefaultAvatarURL is assigned to profiles created without an avatar.
const DefaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix"

// UserProfile represents an application user. Profiles start as a guest
// placeholder and are promoted to a registered record when the registration
// form is completed.
// bson and json tag names are kept identical: queued writes marshal through
// JSON before landing in MongoDB, so diverging names would store fields the
// read path cannot decode.
type UserProfile struct {
	ID               string `bson:"id" json:"id"`
	Name             string `bson:"name" json:"name"`
	Age              string `bson:"age" json:"age"`
	Church           string `bson:"church" json:"church"`
	Role             string `bson:"role" json:"role"`
	WhatsApp         string `bson:"whatsapp" json:"whatsapp"`
	AvatarURL        string `bson:"avatarUrl" json:"avatarUrl"`
	IsRegistered     bool   `bson:"isRegistered" json:"isRegistered"`
	RegistrationDate string `bson:"registrationDate" json:"registrationDate"`
}

// GuestProfile returns the initial profile for a session with no identity.
func GuestProfile() UserProfile {
	return UserProfile{
		ID:        GuestID,
		AvatarURL: DefaultAvatarURL,
	}
}

// IsGuest reports whether the profile is the guest sentinel.
func (p UserProfile) IsGuest() bool {
	return p.ID == GuestID
}

// UserProfilePatch is a partial profile update. Nil fields are left untouched
// by the merge.
type UserProfilePatch struct {
	Name             *string `json:"name,omitempty"`
	Age              *string `json:"age,omitempty"`
	Church           *string `json:"church,omitempty"`
	Role             *string `json:"role,omitempty"`
	WhatsApp         *string `json:"whatsapp,omitempty"`
	AvatarURL        *string `json:"avatarUrl,omitempty"`
	IsRegistered     *bool   `json:"isRegistered,omitempty"`
	RegistrationDate *string `json:"registrationDate,omitempty"`
}

// Merge applies the patch over the profile and returns the merged value.
func (p UserProfile) Merge(patch UserProfilePatch) UserProfile {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Church != nil {
		p.Church = *patch.Church
	}
	if patch.Role != nil {
		p.Role = *patch.Role
	}
	if patch.WhatsApp != nil {
		p.WhatsApp = *patch.WhatsApp
	}
	if patch.AvatarURL != nil {
		p.AvatarURL = *patch.AvatarURL
	}
	if patch.IsRegistered != nil {
		p.IsRegistered = *patch.IsRegistered
	}
	if patch.RegistrationDate != nil {
		p.RegistrationDate = *patch.RegistrationDate
	}
	return p
}

// RegistrationInput is the payload of the registration form.
type RegistrationInput struct {
	Name         string `json:"name"`
	Age          string `json:"age"`
	Church       string `json:"church"`
	CustomChurch string `json:"customChurch"`
	Role         string `json:"role"`
	WhatsApp     string `json:"whatsapp"`
	AvatarURL    string `json:"avatarUrl"`
}

// ResolvedChurch returns the church name the profile should carry. Selecting
// "Nova Igreja" in the form means the user typed their own church name.
func (in RegistrationInput) ResolvedChurch() string {
	if in.Church == "Nova Igreja" {
		return in.CustomChurch
	}
	return in.Church
}

// NewRegistrationDate formats the registration timestamp the way the mobile
// client stores it.
func NewRegistrationDate(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
