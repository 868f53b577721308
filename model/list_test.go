package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_PaginatedEnvelope(t *testing.T) {
	body := `{
		"count": 250,
		"next": "http://localhost/books/?page=2",
		"previous": null,
		"results": [{"id": "b1", "pq_title": "ipsum"}, {"id": "b2", "pq_title": "lorem"}]
	}`

	var list List[Book]
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	assert.Equal(t, 250, list.Count)
	assert.True(t, list.HasNext())
	assert.False(t, list.HasPrevious())
	require.Len(t, list.Results, 2)
	assert.Equal(t, "lorem", list.Results[1].PQTitle)
}

func TestList_BareArray(t *testing.T) {
	var list List[Book]
	require.NoError(t, json.Unmarshal([]byte(`[{"id": "b1"}, {"id": "b2"}, {"id": "b3"}]`), &list))

	assert.Equal(t, 3, list.Count)
	assert.False(t, list.HasNext())
	assert.Equal(t, "b3", list.Results[2].Id)
}

func TestList_DecodeReplacesPreviousPage(t *testing.T) {
	var list List[Book]
	require.NoError(t, json.Unmarshal([]byte(`{"count": 250, "next": "x", "previous": "y", "results": [{"id": "b1"}]}`), &list))
	require.True(t, list.HasNext())

	require.NoError(t, json.Unmarshal([]byte(`[{"id": "b2"}]`), &list))
	assert.False(t, list.HasNext())
	assert.False(t, list.HasPrevious())
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "b2", list.Results[0].Id)
}

func TestList_RejectsObjectWithoutResults(t *testing.T) {
	var list List[Book]
	err := json.Unmarshal([]byte(`{"detail": "Authentication credentials were not provided."}`), &list)
	assert.Error(t, err)
}

func TestRef_DecodesEveryForm(t *testing.T) {
	var page Page
	body := `{
		"id": "p1",
		"created_by_run": {"pk": "run-1", "date_started": "2019-07-15", "label": "run-1 - 2019"},
		"spread": "spread-9",
		"side": "l"
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	assert.Equal(t, "run-1", page.CreatedByRun.Id)
	assert.Equal(t, "run-1 - 2019", page.CreatedByRun.String())
	assert.Equal(t, "spread-9", page.Spread.Id)
	assert.Equal(t, "left", page.SideName())
}

func TestCharacter_ClassPrefersHumanAssignment(t *testing.T) {
	var c Character
	require.NoError(t, json.Unmarshal([]byte(`{"character_class": "a", "human_character_class": null}`), &c))
	assert.Equal(t, "a", c.Class())

	require.NoError(t, json.Unmarshal([]byte(`{"character_class": "a", "human_character_class": {"classname": "G_uc"}}`), &c))
	assert.Equal(t, "G_uc", c.Class())
}
