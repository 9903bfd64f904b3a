package models

import "strings"

// AppView is the closed set of screen identifiers driving the view router.
type AppView string

const (
	// User views
	ViewWelcome   AppView = "WELCOME"
	ViewRegister  AppView = "REGISTER"
	ViewHome      AppView = "HOME"
	ViewBible     AppView = "BIBLE"
	ViewExegesis  AppView = "EXEGESIS"
	ViewTools     AppView = "TOOLS"
	ViewCommunity AppView = "COMMUNITY"
	ViewMore      AppView = "MORE"
	ViewProfile   AppView = "PROFILE"
	ViewSettings  AppView = "SETTINGS"

	// Admin views
	ViewAdminLogin     AppView = "ADMIN_LOGIN"
	ViewAdminHome      AppView = "ADMIN_HOME"
	ViewAdminUsers     AppView = "ADMIN_USERS"
	ViewAdminContent   AppView = "ADMIN_CONTENT"
	ViewAdminAnalytics AppView = "ADMIN_ANALYTICS"
	ViewAdminSupport   AppView = "ADMIN_SUPPORT"
)

// IsValid reports whether v is a known view identifier.
func (v AppView) IsValid() bool {
	switch v {
	case ViewWelcome, ViewRegister, ViewHome, ViewBible, ViewExegesis,
		ViewTools, ViewCommunity, ViewMore, ViewProfile, ViewSettings,
		ViewAdminLogin, ViewAdminHome, ViewAdminUsers, ViewAdminContent,
		ViewAdminAnalytics, ViewAdminSupport:
		return true
	}
	return false
}

// IsAdmin reports whether v belongs to the admin console partition.
func (v AppView) IsAdmin() bool {
	return strings.HasPrefix(string(v), "ADMIN_")
}

// ViewParams is the one-shot parameter payload carried across a single
// navigation. Each view that accepts parameters has its own field; at most
// one field is set per transition.
type ViewParams struct {
	// OpenStudy reopens a saved study in the exegesis generator.
	OpenStudy *StudyResult `json:"openStudy,omitempty"`
	// Section pre-selects a section on the MORE screen.
	Section *string `json:"section,omitempty"`
}
