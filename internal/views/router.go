// Package views maps session state to the screen the client should render.
// Resolution is a pure function; it never mutates the session and two calls
// with the same inputs always yield the same screen.
package views

import (
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
)

// Shell identifies the top-level layout wrapping a screen.
type Shell string

const (
	// ShellEntry hosts the welcome and registration flows, no navigation.
	ShellEntry Shell = "entry"
	// ShellClient is the main app layout with header and bottom navigation.
	ShellClient Shell = "client"
	// ShellAdmin is the admin console layout with its own sub-navigation.
	ShellAdmin Shell = "admin"
)

// Screen is the resolved render target for a session state.
type Screen struct {
	Shell          Shell             `json:"shell"`
	View           models.AppView    `json:"view"`
	Params         models.ViewParams `json:"params"`
	ShowNavigation bool              `json:"showNavigation"`
	Maintenance    bool              `json:"maintenance"`
	Theme          string            `json:"theme"`
	// AvatarURL is set on client screens for registered users; the header
	// renders it in place of the generic profile icon.
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Resolve dispatches a view to its screen. Partition order is fixed: admin
// console first, then the entry screens, then the client shell. The
// maintenance lockout covers every client screen; ADMIN_LOGIN stays
// reachable so an admin can get in and turn maintenance off.
func Resolve(view models.AppView, params models.ViewParams, user models.UserProfile, config models.AdminConfig, theme string) Screen {
	if view.IsAdmin() {
		if view == models.ViewAdminLogin {
			return Screen{
				Shell: ShellAdmin,
				View:  models.ViewAdminLogin,
				Theme: theme,
			}
		}
		return Screen{
			Shell:          ShellAdmin,
			View:           view,
			ShowNavigation: true,
			Theme:          theme,
		}
	}

	if view == models.ViewWelcome {
		return Screen{
			Shell: ShellEntry,
			View:  models.ViewWelcome,
			Theme: theme,
		}
	}

	if view == models.ViewRegister {
		return Screen{
			Shell: ShellEntry,
			View:  models.ViewRegister,
			Theme: theme,
		}
	}

	if config.MaintenanceMode {
		return Screen{
			Shell:       ShellClient,
			View:        view,
			Maintenance: true,
			Theme:       theme,
		}
	}

	avatar := ""
	if user.IsRegistered {
		avatar = user.AvatarURL
	}

	switch view {
	case models.ViewHome, models.ViewBible, models.ViewExegesis,
		models.ViewTools, models.ViewCommunity, models.ViewMore,
		models.ViewProfile, models.ViewSettings:
		return Screen{
			Shell:          ShellClient,
			View:           view,
			Params:         params,
			ShowNavigation: true,
			Theme:          theme,
			AvatarURL:      avatar,
		}
	default:
		// Unknown views land on HOME, params dropped
		return Screen{
			Shell:          ShellClient,
			View:           models.ViewHome,
			ShowNavigation: true,
			Theme:          theme,
			AvatarURL:      avatar,
		}
	}
}
