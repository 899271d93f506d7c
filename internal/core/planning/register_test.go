package planning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiday/epiday/internal/model"
)

func eventCoord() model.Coordinate {
	return model.Coordinate{
		Year:         2019,
		CodeModule:   "B-INF-301",
		CodeInstance: "REN-1-1",
		CodeActi:     "acti-123",
		CodeEvent:    "event-456",
	}
}

func TestSubmitToken(t *testing.T) {
	path := "/module/2019/B-INF-301/REN-1-1/acti-123/event-456/token?format=json"
	gw := &fakeGateway{bodies: map[string][]byte{path: []byte(`{"done": 1}`)}}

	err := newPlanning(gw).SubmitToken(context.Background(), testCred, eventCoord(), "12345678")
	require.NoError(t, err)
}

func TestSubmitToken_UpstreamErrorBody(t *testing.T) {
	path := "/module/2019/B-INF-301/REN-1-1/acti-123/event-456/token?format=json"
	gw := &fakeGateway{bodies: map[string][]byte{path: []byte(`{"error": "Token is invalid"}`)}}

	err := newPlanning(gw).SubmitToken(context.Background(), testCred, eventCoord(), "00000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUpstreamRejected)
	assert.Contains(t, err.Error(), "Token is invalid")
}

func TestUnregisterEvent_PastActivityIsCallerError(t *testing.T) {
	path := "/module/2019/B-INF-301/REN-1-1/acti-123/event-456/unregister?format=json"
	gw := &fakeGateway{
		bodies: map[string][]byte{},
		raw: map[string]rawResponse{
			path: {status: 500, body: []byte(`{"error": "You cannot unregister from a past activity"}`)},
		},
	}

	err := newPlanning(gw).UnregisterEvent(context.Background(), testCred, eventCoord())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestUnregisterEvent_OK(t *testing.T) {
	path := "/module/2019/B-INF-301/REN-1-1/acti-123/event-456/unregister?format=json"
	gw := &fakeGateway{
		bodies: map[string][]byte{},
		raw:    map[string]rawResponse{path: {status: 200, body: []byte(`{}`)}},
	}

	require.NoError(t, newPlanning(gw).UnregisterEvent(context.Background(), testCred, eventCoord()))
}
