package services

import (
	"encoding/json"
	"testing"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// syncedDocument builds the $set document the way the sync path does: the job
// data is JSON-encoded on the queue, so the stored keys are the JSON ones.
func syncedDocument(t *testing.T, data interface{}) bson.M {
	t.Helper()

	dataBytes, err := json.Marshal(data)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, json.Unmarshal(dataBytes, &doc))
	return doc
}

func TestSyncedProfileSurvivesBSONDecode(t *testing.T) {
	profile := models.UserProfile{
		ID:               "user-abc",
		Name:             "Maria Souza",
		Age:              "34",
		Church:           "Igreja Batista Central",
		Role:             "Professora",
		WhatsApp:         "5521999887766",
		AvatarURL:        "http://x/y.png",
		IsRegistered:     true,
		RegistrationDate: "2024-03-15T13:30:00Z",
	}

	doc := syncedDocument(t, profile)
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var restored models.UserProfile
	require.NoError(t, bson.Unmarshal(raw, &restored))

	assert.Equal(t, profile, restored)
	assert.True(t, restored.IsRegistered)
	assert.Equal(t, "http://x/y.png", restored.AvatarURL)
	assert.Equal(t, "2024-03-15T13:30:00Z", restored.RegistrationDate)
}

func TestSyncedProfileKeysMatchQueries(t *testing.T) {
	doc := syncedDocument(t, models.UserProfile{ID: "user-abc", IsRegistered: true})

	// Keys the repository filters and sorts on must be the stored ones.
	assert.Contains(t, doc, "id")
	assert.Contains(t, doc, "isRegistered")
	assert.Contains(t, doc, "registrationDate")
}

func TestSyncedFeedbackKeysMatchQueries(t *testing.T) {
	feedback := models.Feedback{
		ID:       "fb-1",
		UserID:   "user-abc",
		UserName: "Maria Souza",
		Message:  "Ótimo aplicativo",
		Date:     "2024-03-15T13:30:00Z",
	}

	doc := syncedDocument(t, feedback)
	assert.Contains(t, doc, "userId")
	assert.Contains(t, doc, "userName")
	assert.Contains(t, doc, "date")

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var restored models.Feedback
	require.NoError(t, bson.Unmarshal(raw, &restored))
	assert.Equal(t, feedback.UserID, restored.UserID)
	assert.Equal(t, feedback.UserName, restored.UserName)
	assert.Equal(t, feedback.Date, restored.Date)
}
