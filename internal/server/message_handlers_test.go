package server

import (
	"fmt"
	"net/http"
	"testing"

	"skip2love/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	s, app, db := newTestServer(t)
	_, aliceToken := createUserWithToken(t, s, db, "alice")
	bob, _ := createUserWithToken(t, s, db, "bob")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/messages", aliceToken, map[string]any{
		"receiver_id": bob.ID,
		"content":     "Hey, saw your post about hiking!",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var msg models.Message
	decodeBody(t, resp, &msg)
	assert.Equal(t, bob.ID, msg.ReceiverID)
	assert.False(t, msg.IsRead)
}

func TestSendMessage_Blocked(t *testing.T) {
	s, app, db := newTestServer(t)
	alice, aliceToken := createUserWithToken(t, s, db, "alice")
	bob, _ := createUserWithToken(t, s, db, "bob")

	// bob blocked alice; the block denies sends in both directions
	require.NoError(t, db.Create(&models.Block{BlockerID: bob.ID, BlockedUserID: alice.ID}).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/messages", aliceToken, map[string]any{
		"receiver_id": bob.ID,
		"content":     "Hello?",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSendMessage_MissingReceiver(t *testing.T) {
	s, app, db := newTestServer(t)
	_, token := createUserWithToken(t, s, db, "alice")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/messages", token, map[string]any{
		"content": "Orphaned message",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMessageHistory_MarksRead(t *testing.T) {
	s, app, db := newTestServer(t)
	alice, aliceToken := createUserWithToken(t, s, db, "alice")
	bob, _ := createUserWithToken(t, s, db, "bob")

	require.NoError(t, db.Create(&models.Message{
		SenderID: bob.ID, ReceiverID: alice.ID, Content: "hi alice",
	}).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodGet,
		fmt.Sprintf("/api/messages/%d", bob.ID), aliceToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var history []models.Message
	decodeBody(t, resp, &history)
	require.Len(t, history, 1)
	assert.True(t, history[0].IsRead)

	var stored models.Message
	require.NoError(t, db.First(&stored).Error)
	assert.True(t, stored.IsRead)
}

func TestGetConversations(t *testing.T) {
	s, app, db := newTestServer(t)
	alice, aliceToken := createUserWithToken(t, s, db, "alice")
	bob, _ := createUserWithToken(t, s, db, "bob")
	carol, _ := createUserWithToken(t, s, db, "carol")

	require.NoError(t, db.Create(&models.Message{
		SenderID: alice.ID, ReceiverID: bob.ID, Content: "hey bob",
	}).Error)
	require.NoError(t, db.Create(&models.Message{
		SenderID: carol.ID, ReceiverID: alice.ID, Content: "hi alice",
	}).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/conversations", aliceToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var convs []map[string]any
	decodeBody(t, resp, &convs)
	assert.Len(t, convs, 2)

	// counterpart profiles come back scrubbed
	for _, conv := range convs {
		other, ok := conv["other_user"].(map[string]any)
		require.True(t, ok)
		assert.Empty(t, other["email"])
	}
}
