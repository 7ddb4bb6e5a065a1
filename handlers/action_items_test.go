package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionItemLifecycle(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t, nil))

	resp, item := doRequest(t, fiberApp, http.MethodPost, "/action-items", map[string]string{"description": "  Call the plumber  "})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Call the plumber", item["description"])
	assert.Equal(t, false, item["completed"])
	assert.Nil(t, item["note_id"])
	id := int64(item["id"].(float64))
	path := fmt.Sprintf("/action-items/%d", id)

	resp, fetched := doRequest(t, fiberApp, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, item, fetched)

	resp, completed := doRequest(t, fiberApp, http.MethodPut, path+"/complete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, completed["completed"])

	resp, undone := doRequest(t, fiberApp, http.MethodPost, path+"/done", map[string]bool{"done": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, undone["completed"])

	resp, done := doRequest(t, fiberApp, http.MethodPost, path+"/done", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, done["completed"], "done defaults to true")

	resp, patched := doRequest(t, fiberApp, http.MethodPatch, path, map[string]any{"description": "Call the electrician"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Call the electrician", patched["description"])
	assert.Equal(t, true, patched["completed"], "absent fields are left untouched")

	resp, _ = doRequest(t, fiberApp, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, path},
		{http.MethodPut, path + "/complete"},
		{http.MethodPost, path + "/done"},
		{http.MethodPatch, path},
		{http.MethodDelete, path},
	} {
		resp, body := doRequest(t, fiberApp, tc.method, tc.path, map[string]any{})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Action item not found", body["error"])
	}
}

func TestCreateActionItem_Validation(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t, nil))

	tests := []struct {
		name           string
		body           any
		expectedStatus int
		expectedField  string
	}{
		{
			name:           "Whitespace description",
			body:           map[string]string{"description": "   "},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "description",
		},
		{
			name:           "Description of 501 characters",
			body:           map[string]string{"description": strings.Repeat("d", 501)},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "description",
		},
		{
			name:           "Unknown note",
			body:           map[string]any{"description": "orphan", "note_id": 999},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "note_id",
		},
		{
			name:           "Malformed JSON",
			body:           `{"description"`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, fiberApp, http.MethodPost, "/action-items", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode, body)

			if tt.expectedField != "" {
				details, ok := body["details"].([]any)
				require.True(t, ok)
				assert.Equal(t, tt.expectedField, details[0].(map[string]any)["field"])
			}
		})
	}
}

func TestUpdateActionItem_Validation(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t, nil))
	id := createActionItem(t, fiberApp, "Original", nil)

	resp, _ := doRequest(t, fiberApp, http.MethodPatch, fmt.Sprintf("/action-items/%d", id), map[string]string{"description": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doRequest(t, fiberApp, http.MethodGet, "/action-items/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListActionItems(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t, nil))

	noteID := createNote(t, fiberApp, "Planning", "Q3 plan")
	first := createActionItem(t, fiberApp, "Write brief", &noteID)
	createActionItem(t, fiberApp, "Book room", &noteID)
	createActionItem(t, fiberApp, "Answer email", nil)

	resp, _ := doRequest(t, fiberApp, http.MethodPut, fmt.Sprintf("/action-items/%d/complete", first), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expected       []string
	}{
		{name: "All, oldest first", query: "?sort=created_at", expectedStatus: http.StatusOK, expected: []string{"Write brief", "Book room", "Answer email"}},
		{name: "Open only", query: "?completed=false&sort=id", expectedStatus: http.StatusOK, expected: []string{"Book room", "Answer email"}},
		{name: "Completed only", query: "?completed=true", expectedStatus: http.StatusOK, expected: []string{"Write brief"}},
		{name: "By note", query: fmt.Sprintf("?note_id=%d&sort=-id", noteID), expectedStatus: http.StatusOK, expected: []string{"Book room", "Write brief"}},
		{name: "By description", query: "?sort=description", expectedStatus: http.StatusOK, expected: []string{"Answer email", "Book room", "Write brief"}},
		{name: "Completed first", query: "?sort=-completed&limit=1", expectedStatus: http.StatusOK, expected: []string{"Write brief"}},
		{name: "Unknown sort field", query: "?sort=priority", expectedStatus: http.StatusBadRequest},
		{name: "Limit above maximum", query: "?limit=1000", expectedStatus: http.StatusUnprocessableEntity},
		{name: "Bad completed value", query: "?completed=maybe", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, fiberApp, http.MethodGet, "/action-items"+tt.query, nil)
			require.Equal(t, tt.expectedStatus, resp.StatusCode, body)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var got []string
			for _, item := range itemsOf(body) {
				got = append(got, item["description"].(string))
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNoteActionItems(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t, nil))

	noteID := createNote(t, fiberApp, "Retro", "What went well")
	createActionItem(t, fiberApp, "Fix flaky test", &noteID)
	createActionItem(t, fiberApp, "Unrelated", nil)

	resp, body := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/notes/%d/action-items", noteID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, "Fix flaky test", itemsOf(body)[0]["description"])

	resp, _ = doRequest(t, fiberApp, http.MethodGet, "/notes/999/action-items", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteNote_DetachesActionItems(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t, nil))

	noteID := createNote(t, fiberApp, "Temp", "Soon gone")
	itemID := createActionItem(t, fiberApp, "Survives", &noteID)

	resp, _ := doRequest(t, fiberApp, http.MethodDelete, fmt.Sprintf("/notes/%d", noteID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, item := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/action-items/%d", itemID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, item["note_id"])
	assert.Equal(t, "Survives", item["description"])
}

func TestExtractActionItems(t *testing.T) {
	text := "Sprint planning\nTODO: Set up database\n- set up database\nACTION: Write documentation"

	tests := []struct {
		name           string
		extractor      *fakeExtractor
		body           any
		expectedStatus int
		expectedItems  []string
		expectNote     bool
	}{
		{
			name:           "Deduplicated items without note",
			extractor:      &fakeExtractor{items: []string{"Set up database", "set up database", "Write documentation", "  "}},
			body:           map[string]any{"text": text},
			expectedStatus: http.StatusOK,
			expectedItems:  []string{"Set up database", "Write documentation"},
		},
		{
			name:           "Saved as note",
			extractor:      &fakeExtractor{items: []string{"Set up database"}},
			body:           map[string]any{"text": text, "save_note": true},
			expectedStatus: http.StatusOK,
			expectedItems:  []string{"Set up database"},
			expectNote:     true,
		},
		{
			name:           "Nothing found",
			extractor:      &fakeExtractor{items: []string{}},
			body:           map[string]any{"text": "just musing"},
			expectedStatus: http.StatusOK,
			expectedItems:  []string{},
		},
		{
			name:           "Extractor failure",
			extractor:      &fakeExtractor{err: errors.New("connection refused")},
			body:           map[string]any{"text": text, "save_note": true},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "Blank text",
			extractor:      &fakeExtractor{},
			body:           map[string]any{"text": " \n "},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Text longer than a note may be",
			extractor:      &fakeExtractor{items: []string{"Never asked"}},
			body:           map[string]any{"text": "Title\n" + strings.Repeat("x", 12000), "save_note": true},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Malformed JSON",
			extractor:      &fakeExtractor{},
			body:           `{"text": 12`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fiberApp := setupTestApp(setupTestDB(t, tt.extractor))

			resp, body := doRequest(t, fiberApp, http.MethodPost, "/action-items/extract", tt.body)
			require.Equal(t, tt.expectedStatus, resp.StatusCode, body)

			if tt.expectedStatus != http.StatusOK {
				assert.NotEmpty(t, body["error"])
				_, list := doRequest(t, fiberApp, http.MethodGet, "/action-items", nil)
				assert.Equal(t, float64(0), list["total"], "failed extraction stores nothing")
				_, notes := doRequest(t, fiberApp, http.MethodGet, "/notes", nil)
				assert.Equal(t, float64(0), notes["total"], "failed extraction stores nothing")
				return
			}

			got := make([]string, 0)
			for _, item := range itemsOf(body) {
				got = append(got, item["description"].(string))
				assert.Equal(t, body["note_id"], item["note_id"])
			}
			assert.Equal(t, tt.expectedItems, got)

			if !tt.expectNote {
				assert.Nil(t, body["note_id"])
				return
			}

			require.NotNil(t, body["note_id"])
			resp, note := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/notes/%d", int64(body["note_id"].(float64))), nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "Sprint planning", note["title"])
			assert.Equal(t, text, note["content"])
		})
	}
}

func TestExtractActionItems_RouteNotShadowedByID(t *testing.T) {
	extractor := &fakeExtractor{items: []string{"One"}}
	fiberApp := setupTestApp(setupTestDB(t, extractor))

	resp, _ := doRequest(t, fiberApp, http.MethodPost, "/action-items/extract", map[string]string{"text": "One"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"One"}, extractor.calls)
}
