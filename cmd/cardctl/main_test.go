package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/chatcard"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func sampleJSON(t *testing.T) string {
	t.Helper()
	b, err := chatcard.Encode(chatcard.SampleMessage())
	require.NoError(t, err)
	return string(b)
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage:")

	code, _, _ = runCLI(t, "", "bogus")
	assert.Equal(t, 2, code)
}

func TestValidate(t *testing.T) {
	code, stdout, _ := runCLI(t, sampleJSON(t), "validate", "-jsonschema")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ok\n", stdout)

	code, stdout, _ = runCLI(t, `{"cardsV2":[{"card":{"sections":[{"widgets":[{"image":{},"grid":{}}]}]}}]}`, "validate")
	assert.Equal(t, 1, code)
	assert.Equal(t, "cardsV2[0].card.sections[0].widgets[0]: ambiguous_union: "+
		issueMessage(t, `{"cardsV2":[{"card":{"sections":[{"widgets":[{"image":{},"grid":{}}]}]}}]}`)+"\n", stdout)

	code, stdout, _ = runCLI(t, `[]`, "validate", "-card")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stdout, "(root): type_mismatch: "), stdout)

	code, stdout, _ = runCLI(t, "header:\n  title: T\n", "validate", "-card", "-yaml")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ok\n", stdout)
}

func issueMessage(t *testing.T, in string) string {
	t.Helper()
	_, err := chatcard.DecodeMessage([]byte(in))
	iss, ok := chatcard.AsIssues(err)
	require.True(t, ok)
	return iss[0].Message
}

func TestFmt(t *testing.T) {
	code, stdout, _ := runCLI(t, `{ "name" : "n",  "header":{"imageType":1} }`, "fmt", "-card", "-indent", "")
	assert.Equal(t, 0, code)
	assert.Equal(t, `{"header":{"imageType":"CIRCLE"},"name":"n"}`+"\n", stdout)

	code, stdout, _ = runCLI(t, `{"name":"n"}`, "fmt", "-card")
	assert.Equal(t, 0, code)
	assert.Equal(t, "{\n  \"name\": \"n\"\n}\n", stdout)
}

func TestSchema(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "schema", "-indent", "")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, chatcard.SchemaID)
}

func TestSend(t *testing.T) {
	var got []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	code, _, stderr := runCLI(t, "", "send", "-sample", "-url", srv.URL)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, sampleJSON(t), string(got))
	assert.Contains(t, stderr, `"msg":"sent"`)

	t.Setenv(envWebhookURL, "")
	code, _, stderr = runCLI(t, "", "send", "-sample")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid config")
}

func TestServer(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := httptest.NewServer(newServer(log))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/messages", "application/json", strings.NewReader(`{ "cardsV2": [ {"cardId":"x"} ] }`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"cardsV2":[{"cardId":"x"}]}`, string(body))

	resp, err = http.Post(srv.URL+"/messages", "application/json", strings.NewReader(`{"cardsV2":5}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/schema")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "$defs")
}
