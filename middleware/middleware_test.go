package middleware_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/chatcard"
	"github.com/reoring/chatcard/middleware"
)

func TestDecodeBody(t *testing.T) {
	opt := middleware.DefaultDecodeOpt()

	msg, payload := middleware.DecodeBody[chatcard.Message](strings.NewReader(`{"cardsV2":[{"cardId":"a"}]}`), opt)
	require.Nil(t, payload)
	require.Len(t, msg.CardsV2, 1)
	assert.Equal(t, "a", *msg.CardsV2[0].CardID)

	_, payload = middleware.DecodeBody[chatcard.Message](strings.NewReader(`{"cardsV2":[],"cardsV2":[]}`), opt)
	require.NotNil(t, payload)
	issues, ok := payload["issues"].([]middleware.IssuePayload)
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, chatcard.CodeDuplicateKey, issues[0].Code)
	assert.Equal(t, "cardsV2", issues[0].Path)
}

func TestContextWithDocument(t *testing.T) {
	card := &chatcard.Card{Name: chatcard.String("c")}
	ctx := middleware.ContextWithDocument(context.Background(), card)

	got, ok := middleware.DocumentFromContext[chatcard.Card](ctx)
	require.True(t, ok)
	assert.Same(t, card, got)

	_, ok = middleware.DocumentFromContext[chatcard.Message](ctx)
	assert.False(t, ok, "documents are keyed by type")
}
