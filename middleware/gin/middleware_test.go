package ginmw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/chatcard"
	ginmw "github.com/reoring/chatcard/middleware/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/messages", ginmw.ValidateMessage(), func(c *gin.Context) {
		msg, ok := ginmw.GetMessage(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, "%d", len(msg.CardsV2))
	})
	return r
}

func TestValidateMessage_OK(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{"cardsV2":[{},{}]}`))
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Body.String())
}

func TestValidateMessage_BadRequest(t *testing.T) {
	body := `{"cardsV2":[{"card":{"header":{"imageType":"OVAL"}}}]}`
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var out struct {
		Issues []struct{ Path, Code string } `json:"issues"`
	}
	require.NoError(t, j.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Issues, 1)
	assert.Equal(t, chatcard.CodeUnknownEnumValue, out.Issues[0].Code)
	assert.Equal(t, "cardsV2[0].card.header.imageType", out.Issues[0].Path)
}
