package echomw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/chatcard"
	echomw "github.com/reoring/chatcard/middleware/echo"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.POST("/messages", func(c echo.Context) error {
		msg, ok := echomw.GetMessage(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, *msg.CardsV2[0].CardID)
	}, echomw.ValidateMessage())
	e.POST("/cards", func(c echo.Context) error {
		card, ok := echomw.GetDocument[chatcard.Card](c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, *card.Name)
	}, echomw.ValidateJSON[chatcard.Card]())
	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestValidateMessage_OK(t *testing.T) {
	rec := post(newEcho(), "/messages", `{"cardsV2":[{"cardId":"id-1","card":{}}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "id-1", rec.Body.String())
}

func TestValidateMessage_BadRequest(t *testing.T) {
	rec := post(newEcho(), "/messages",
		`{"cardsV2":[{"card":{"sections":[{"widgets":[{"image":{},"grid":{}}]}]}}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Issues []struct{ Path, Code string } `json:"issues"`
	}
	require.NoError(t, j.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Issues, 1)
	assert.Equal(t, chatcard.CodeAmbiguousUnion, body.Issues[0].Code)
	assert.Equal(t, "cardsV2[0].card.sections[0].widgets[0]", body.Issues[0].Path)
}

func TestValidateJSON_Card(t *testing.T) {
	e := newEcho()
	rec := post(e, "/cards", `{"name":"weekly"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "weekly", rec.Body.String())

	rec = post(e, "/cards", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), chatcard.CodeParseError)
}
