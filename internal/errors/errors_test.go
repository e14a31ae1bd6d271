package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	Label *string `json:"label" binding:"required"`
}

type testBody struct {
	Name  *string     `json:"name" binding:"required"`
	Score *float32    `json:"score"`
	Items []*testItem `json:"items" binding:"omitempty,dive,required"`
}

func bind(t *testing.T, body string) error {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req testBody
	return c.ShouldBindJSON(&req)
}

func TestValidationIssues_MissingField(t *testing.T) {
	err := bind(t, `{"score": 1}`)
	require.Error(t, err)

	issues := ValidationIssues(err)

	require.Len(t, issues, 1)
	assert.Equal(t, []any{"body", "name"}, issues[0].Loc)
	assert.Equal(t, TypeMissing, issues[0].Type)
	assert.Equal(t, "field required", issues[0].Msg)
}

func TestValidationIssues_NestedListItem(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []any
	}{
		{"missing item field", `{"name": "x", "items": [{"label": "a"}, {}]}`, []any{"body", "items", 1, "label"}},
		{"null item", `{"name": "x", "items": [null]}`, []any{"body", "items", 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := bind(t, tc.body)
			require.Error(t, err)

			issues := ValidationIssues(err)

			require.Len(t, issues, 1)
			assert.Equal(t, tc.expected, issues[0].Loc)
			assert.Equal(t, TypeMissing, issues[0].Type)
		})
	}
}

func TestBodyLoc(t *testing.T) {
	tests := []struct {
		path     string
		expected []any
	}{
		{"", []any{"body"}},
		{"prompt", []any{"body", "prompt"}},
		{"conversation_history[0].content", []any{"body", "conversation_history", 0, "content"}},
		{"conversation_history[12]", []any{"body", "conversation_history", 12}},
		{"grid[1][2]", []any{"body", "grid", 1, 2}},
		{"labels[en]", []any{"body", "labels", "en"}},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, bodyLoc(tc.path))
		})
	}
}

func TestValidationIssues_WrongType(t *testing.T) {
	err := bind(t, `{"name": "x", "score": "high"}`)
	require.Error(t, err)

	issues := ValidationIssues(err)

	require.Len(t, issues, 1)
	assert.Equal(t, []any{"body", "score"}, issues[0].Loc)
	assert.Equal(t, TypeWrongType, issues[0].Type)
}

func TestValidationIssues_MalformedJSON(t *testing.T) {
	err := bind(t, `{"name": `)
	require.Error(t, err)

	issues := ValidationIssues(err)

	require.Len(t, issues, 1)
	assert.Equal(t, []any{"body"}, issues[0].Loc)
}

func TestValidationIssues_EmptyBody(t *testing.T) {
	err := bind(t, ``)
	require.Error(t, err)

	issues := ValidationIssues(err)

	require.Len(t, issues, 1)
	assert.Equal(t, []any{"body"}, issues[0].Loc)
	assert.Equal(t, TypeMissing, issues[0].Type)
}

func TestValidationIssues_UnknownError(t *testing.T) {
	issues := ValidationIssues(stderrors.New("something odd"))

	require.Len(t, issues, 1)
	assert.Equal(t, TypeJSONInvalid, issues[0].Type)
	assert.Equal(t, "something odd", issues[0].Msg)
}

func TestValidationError_Responds422(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	ValidationError(c, stderrors.New("bad"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Detail []ValidationIssue `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Detail, 1)
	assert.Equal(t, "bad", body.Detail[0].Msg)
}

func TestInternalError_WrapsDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/generate_code", nil)

	InternalError(c, "failed", stderrors.New("boom"), gin.H{"error": "boom"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":{"error":"boom"}}`, w.Body.String())
}
