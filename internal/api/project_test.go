package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type projectItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Secret      string `json:"-"`
}

func TestProject(t *testing.T) {
	items := []projectItem{
		{Name: "a", Description: "first", Secret: "x"},
		{Name: "b", Description: "second", Secret: "y"},
	}

	t.Run("empty selection keeps items", func(t *testing.T) {
		out := Project(items, nil)
		require.Equal(t, items, out)
	})

	t.Run("keeps only requested fields", func(t *testing.T) {
		out := Project(items, []string{"name"})
		require.Equal(t, []map[string]any{{"name": "a"}, {"name": "b"}}, out)

		body, err := json.Marshal(out)
		require.NoError(t, err)
		require.NotContains(t, string(body), "first")
	})

	t.Run("unknown and hidden fields are ignored", func(t *testing.T) {
		out := Project(items, []string{"name", "bogus", "-"})
		require.Equal(t, []map[string]any{{"name": "a"}, {"name": "b"}}, out)
	})
}
