package expo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, messages []pushMessage)) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/push/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var messages []pushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&messages))

		handler(w, messages)
	}))
}

func writeTickets(w http.ResponseWriter, tickets []pushTicket) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pushResponse{Data: tickets})
}

func TestSendBatchNotification_AllOK(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, messages []pushMessage) {
		tickets := make([]pushTicket, len(messages))
		for i := range tickets {
			tickets[i] = pushTicket{Status: "ok", ID: "ticket"}
		}
		writeTickets(w, tickets)
	})
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	success, failure, invalid, err := client.SendBatchNotification(context.Background(),
		[]string{"ExponentPushToken[aaa]", "ExponentPushToken[bbb]"},
		"Title", "Body", map[string]string{"screen": "Home"})

	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Equal(t, 0, failure)
	assert.Empty(t, invalid)
}

func TestSendBatchNotification_CollectsUnregisteredTokens(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, messages []pushMessage) {
		tickets := make([]pushTicket, len(messages))
		for i := range tickets {
			tickets[i] = pushTicket{Status: "ok"}
		}
		// Second message's device has uninstalled the app.
		tickets[1].Status = "error"
		tickets[1].Message = "the recipient device is not registered"
		tickets[1].Details.Error = "DeviceNotRegistered"
		writeTickets(w, tickets)
	})
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	success, failure, invalid, err := client.SendBatchNotification(context.Background(),
		[]string{"ExponentPushToken[aaa]", "ExponentPushToken[dead]", "ExponentPushToken[ccc]"},
		"Title", "Body", nil)

	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Equal(t, 1, failure)
	assert.Equal(t, []string{"ExponentPushToken[dead]"}, invalid)
}

func TestSendBatchNotification_TransientErrorIsNotInvalid(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, messages []pushMessage) {
		tickets := []pushTicket{{Status: "error", Message: "quota exceeded"}}
		tickets[0].Details.Error = "MessageRateExceeded"
		writeTickets(w, tickets)
	})
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	success, failure, invalid, err := client.SendBatchNotification(context.Background(),
		[]string{"ExponentPushToken[aaa]"}, "Title", "Body", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, success)
	assert.Equal(t, 1, failure)
	assert.Empty(t, invalid)
}

func TestSendBatchNotification_EmptyTokensIsNoOp(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", time.Second, nil)

	success, failure, invalid, err := client.SendBatchNotification(context.Background(), nil, "Title", "Body", nil)

	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
}

func TestSendBatchNotification_RejectsOversizedBatch(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", time.Second, nil)

	tokens := make([]string, maxBatchSize+1)
	for i := range tokens {
		tokens[i] = "ExponentPushToken[x]"
	}

	_, _, _, err := client.SendBatchNotification(context.Background(), tokens, "Title", "Body", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")
}

func TestSendBatchNotification_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	_, _, _, err := client.SendBatchNotification(context.Background(),
		[]string{"ExponentPushToken[aaa]"}, "Title", "Body", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSendBatchNotification_TicketCountMismatch(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, _ []pushMessage) {
		writeTickets(w, []pushTicket{{Status: "ok"}})
	})
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	_, _, _, err := client.SendBatchNotification(context.Background(),
		[]string{"ExponentPushToken[aaa]", "ExponentPushToken[bbb]"}, "Title", "Body", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}
