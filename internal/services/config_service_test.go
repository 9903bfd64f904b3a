package services

import (
	"encoding/json"
	"testing"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSavedConfigSurvivesBSONDecode(t *testing.T) {
	cfg := models.DefaultAdminConfig()
	cfg.MaintenanceMode = true
	cfg.CoverTitle = "Semana de Oração"
	cfg.ActiveModules = []models.ExegesisModule{models.ModuleFullExegesis, models.ModuleHomiletic}

	// SaveConfig builds the $set document from the JSON encoding.
	dataBytes, err := json.Marshal(cfg)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, json.Unmarshal(dataBytes, &doc))

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var restored models.AdminConfig
	require.NoError(t, bson.Unmarshal(raw, &restored))

	assert.True(t, restored.MaintenanceMode)
	assert.Equal(t, "Semana de Oração", restored.CoverTitle)
	assert.Equal(t, cfg.ActiveModules, restored.ActiveModules)
	assert.Equal(t, cfg.Announcement, restored.Announcement)
	assert.Equal(t, cfg.CoverImageURL, restored.CoverImageURL)
}

func TestDefaultConfigSurvivesBSONDecode(t *testing.T) {
	cfg := models.DefaultAdminConfig()

	dataBytes, err := json.Marshal(cfg)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, json.Unmarshal(dataBytes, &doc))

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var restored models.AdminConfig
	require.NoError(t, bson.Unmarshal(raw, &restored))

	assert.Equal(t, cfg, restored)
	assert.Len(t, restored.ActiveModules, 6)
}
