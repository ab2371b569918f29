package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseEnvelope(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		raw, err := json.Marshal(Data("ok"))
		require.NoError(t, err)
		require.JSONEq(t, `{"success":true,"data":"ok"}`, string(raw))
	})

	t.Run("zero count still rendered", func(t *testing.T) {
		raw, err := json.Marshal(DataCount([]string{}, 0))
		require.NoError(t, err)
		require.JSONEq(t, `{"success":true,"data":[],"count":0}`, string(raw))
	})

	t.Run("token", func(t *testing.T) {
		raw, err := json.Marshal(TokenResponse("jwt", map[string]int{"id": 1}))
		require.NoError(t, err)
		require.JSONEq(t, `{"success":true,"token":"jwt","data":{"id":1}}`, string(raw))
	})

	t.Run("error", func(t *testing.T) {
		raw, err := json.Marshal(ErrorResponse("boom"))
		require.NoError(t, err)
		require.JSONEq(t, `{"success":false,"error":"boom"}`, string(raw))
	})
}
