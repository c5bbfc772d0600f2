package eventform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubmissionEncodesStructuredFieldsAsJSON(t *testing.T) {
	d := completeDraft()
	d.AddRule("no slide tackles")
	d.AddRule("arrive 10 minutes early")
	d.AddEquipment("shin guards", true)
	require.NoError(t, d.Images.AddPending(PendingImage{Filename: "court.jpg", ContentType: "image/jpeg", Size: 2048}))

	sub, err := BuildSubmission(d)
	require.NoError(t, err)

	assert.Equal(t, "Sunday Basketball", sub.Fields["name"])
	assert.Equal(t, "10", sub.Fields["maxParticipants"])
	assert.Equal(t, "Beginner", sub.Fields["difficulty"])
	assert.Equal(t, "casual", sub.Fields["eventType"])

	// Structured fields ride as JSON strings, files as raw parts
	assert.JSONEq(t, `{"address":"12 Riverside Court","city":"Springfield","state":"IL"}`, sub.Fields["location"])
	assert.JSONEq(t, `["no slide tackles","arrive 10 minutes early"]`, sub.Fields["rules"])
	assert.JSONEq(t, `[{"item":"shin guards","required":true}]`, sub.Fields["equipment"])
	require.Len(t, sub.Files, 1)
	assert.Equal(t, "court.jpg", sub.Files[0].Filename)
}

func TestBuildSubmissionEmptyListsAreArrays(t *testing.T) {
	sub, err := BuildSubmission(completeDraft())
	require.NoError(t, err)
	assert.Equal(t, "[]", sub.Fields["rules"])
	assert.Equal(t, "[]", sub.Fields["equipment"])
	assert.Equal(t, "[]", sub.Fields["deletedImages"])
}

func TestEditSubmissionTracksDeletionByID(t *testing.T) {
	d := completeDraft()
	d.Images.Existing = []ExistingImage{
		{ID: "img-1", Filename: "one.jpg"},
		{ID: "img-2", Filename: "two.jpg"},
	}
	require.True(t, d.Images.RemoveExisting("img-1"))
	require.NoError(t, d.Images.AddPending(PendingImage{Filename: "new.png", ContentType: "image/png", Size: 100}))

	sub, err := BuildSubmission(d)
	require.NoError(t, err)

	// Payload carries exactly the removed id, exactly the retained image,
	// and exactly one new file part.
	assert.JSONEq(t, `["img-1"]`, sub.Fields["deletedImages"])
	assert.JSONEq(t, `["img-2"]`, sub.Fields["existingImages"])
	require.Len(t, sub.Files, 1)
	assert.Equal(t, "new.png", sub.Files[0].Filename)
}

func TestParseSubmissionRoundTrip(t *testing.T) {
	d := completeDraft()
	d.RegistrationFee = 7.5
	d.AddRule("bring water")
	d.AddEquipment("racket", true)
	d.Images.Existing = []ExistingImage{{ID: "img-9"}}
	d.Images.Deleted = []string{"img-3"}

	sub, err := BuildSubmission(d)
	require.NoError(t, err)

	values := make(map[string][]string, len(sub.Fields))
	for k, v := range sub.Fields {
		values[k] = []string{v}
	}

	parsed, err := ParseSubmission(values)
	require.NoError(t, err)

	assert.Equal(t, d.Name, parsed.Name)
	assert.Equal(t, d.Location, parsed.Location)
	assert.Equal(t, d.MaxParticipants, parsed.MaxParticipants)
	assert.Equal(t, d.RegistrationFee, parsed.RegistrationFee)
	assert.Equal(t, d.Rules, parsed.Rules)
	assert.Equal(t, d.Equipment, parsed.Equipment)
	assert.Equal(t, []string{"img-3"}, parsed.Images.Deleted)
	require.Len(t, parsed.Images.Existing, 1)
	assert.Equal(t, "img-9", parsed.Images.Existing[0].ID)
	assert.Equal(t, 100, Progress(parsed))
}

func TestParseSubmissionRejectsMalformedValues(t *testing.T) {
	_, err := ParseSubmission(map[string][]string{"maxParticipants": {"ten"}})
	assert.Error(t, err)

	_, err = ParseSubmission(map[string][]string{"location": {"{not json"}})
	assert.Error(t, err)

	_, err = ParseSubmission(map[string][]string{"deletedImages": {`{"id":1}`}})
	assert.Error(t, err)
}
