package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/response_models"
)

func TestSessionStoreCreatesAndReuses(t *testing.T) {
	store := NewSessionStore()

	sess, id := store.Get("")
	require.NotNil(t, sess)
	require.NotEmpty(t, id)

	again, sameID := store.Get(id)
	assert.Same(t, sess, again)
	assert.Equal(t, id, sameID)
}

func TestSessionStoreUnknownIDGetsFreshSession(t *testing.T) {
	store := NewSessionStore()

	sess, id := store.Get("forged-id")
	require.NotNil(t, sess)
	assert.NotEqual(t, "forged-id", id)
}

func TestSessionTripOverwrite(t *testing.T) {
	sess := &Session{}
	assert.Nil(t, sess.Trip())

	sess.SetTrip(&TripSnapshot{Country: "Japan", Days: 3})
	sess.Chat().AppendUser("hello")

	sess.SetTrip(&TripSnapshot{Country: "France", Days: 5})
	assert.Equal(t, "France", sess.Trip().Country)

	// A new trip starts a fresh transcript with only the greeting.
	messages := sess.Chat().Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "assistant", messages[0].Role)
}

func TestSessionLogoutKeepsTrip(t *testing.T) {
	sess := &Session{}
	sess.SetTrip(&TripSnapshot{Country: "Japan"})
	sess.SetAuth("token", &response_models.UserResponse{Username: "traveler"})

	sess.Logout()

	assert.False(t, sess.LoggedIn())
	token, user := sess.Auth()
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.NotNil(t, sess.Trip())
}

func TestSessionPlanningLifecycle(t *testing.T) {
	sess := &Session{}
	assert.Empty(t, sess.PlanningStage())

	sess.StartPlanning(NewStageCycler(0))
	assert.NotEmpty(t, sess.PlanningStage())

	sess.FinishPlanning()
	assert.Empty(t, sess.PlanningStage())
}
