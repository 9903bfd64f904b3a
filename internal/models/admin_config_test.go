package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAdminConfig(t *testing.T) {
	cfg := DefaultAdminConfig()

	assert.False(t, cfg.MaintenanceMode)
	assert.Equal(t, "Estude as Escrituras Profundamente", cfg.CoverTitle)
	assert.NotEmpty(t, cfg.Announcement)
	assert.Equal(t, AllModules(), cfg.ActiveModules)
}

func TestAdminConfig_Merge(t *testing.T) {
	cfg := DefaultAdminConfig()

	maintenance := true
	announcement := "Culto de oração hoje às 19h"
	merged := cfg.Merge(AdminConfigPatch{
		MaintenanceMode: &maintenance,
		Announcement:    &announcement,
	})

	assert.True(t, merged.MaintenanceMode)
	assert.Equal(t, announcement, merged.Announcement)
	assert.Equal(t, cfg.CoverTitle, merged.CoverTitle)

	// Re-applying the same patch yields the same result
	again := merged.Merge(AdminConfigPatch{
		MaintenanceMode: &maintenance,
		Announcement:    &announcement,
	})
	assert.Equal(t, merged, again)
}

func TestAdminConfig_MergeActiveModules(t *testing.T) {
	cfg := DefaultAdminConfig()

	modules := []ExegesisModule{ModuleFullExegesis, ModuleHomiletic}
	merged := cfg.Merge(AdminConfigPatch{ActiveModules: &modules})

	assert.Equal(t, modules, merged.ActiveModules)
	assert.Len(t, cfg.ActiveModules, 6, "original is not mutated")
}

func TestExegesisModule_IsValid(t *testing.T) {
	for _, module := range AllModules() {
		assert.True(t, module.IsValid(), "module %s", module)
	}

	assert.False(t, ExegesisModule("Numerologia").IsValid())
	assert.False(t, ExegesisModule("").IsValid())
}

func TestTheologyLine_IsValid(t *testing.T) {
	assert.True(t, TheologyCalvinist.IsValid())
	assert.True(t, TheologyArminian.IsValid())
	assert.True(t, TheologyPentecostal.IsValid())
	assert.False(t, TheologyLine("Gnóstica").IsValid())
}

func TestAppView_IsAdmin(t *testing.T) {
	assert.True(t, ViewAdminLogin.IsAdmin())
	assert.True(t, ViewAdminSupport.IsAdmin())
	assert.False(t, ViewHome.IsAdmin())
	assert.False(t, ViewWelcome.IsAdmin())
}
