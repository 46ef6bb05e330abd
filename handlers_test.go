package main

import (
	"encoding/json"
	"testing"

	"github.com/freekieb7/pebble/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCtx(method, path, rawQuery string, body []byte) *http.RequestCtx {
	ctx := &http.RequestCtx{}
	ctx.Request.Method = method
	ctx.Request.Path = path
	ctx.Request.RawQuery = rawQuery
	ctx.Request.BodyRaw = body
	ctx.Response.Reset()
	return ctx
}

func TestHandleGreeting(t *testing.T) {
	ctx := newTestCtx("GET", "/", "", nil)

	handleGreeting(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.Status)
	assert.Equal(t, "text/plain", ctx.Response.ContentType)
	assert.Equal(t, "Hello from Pebble!", string(ctx.Response.Body))
}

func TestHandleQueryEchoJson(t *testing.T) {
	ctx := newTestCtx("GET", "/something", "a=1&a=2&json=true", nil)

	handleQueryEcho(ctx)

	assert.Equal(t, "application/json", ctx.Response.ContentType)

	var payload struct {
		Route string            `json:"route"`
		Query map[string]string `json:"query"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body, &payload))
	assert.Equal(t, "/something", payload.Route)
	assert.Equal(t, "2", payload.Query["a"], "last duplicate value wins")
	assert.Equal(t, "true", payload.Query["json"])
}

func TestHandleQueryEchoText(t *testing.T) {
	ctx := newTestCtx("GET", "/something", "a=1&json=false", nil)

	handleQueryEcho(ctx)

	assert.Equal(t, "text/plain", ctx.Response.ContentType)
	assert.Contains(t, string(ctx.Response.Body), "Route: /something")
	assert.Contains(t, string(ctx.Response.Body), "a:1")
}

func TestHandleBodyEcho(t *testing.T) {
	ctx := newTestCtx("POST", "/something", "", []byte(`{"x":1}`))

	handleBodyEcho(ctx)

	assert.Equal(t, "application/json", ctx.Response.ContentType)
	assert.JSONEq(t, `{"route":"/something","body":{"x":1}}`, string(ctx.Response.Body))
}

func TestHandleBodyEchoEmpty(t *testing.T) {
	ctx := newTestCtx("POST", "/something", "", nil)

	handleBodyEcho(ctx)

	assert.JSONEq(t, `{"route":"/something","body":{}}`, string(ctx.Response.Body))
}

func TestHandleBodyEchoInvalidJson(t *testing.T) {
	ctx := newTestCtx("POST", "/something", "", []byte(`not json at all`))

	handleBodyEcho(ctx)

	var payload struct {
		Body string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body, &payload))
	assert.Equal(t, "not json at all", payload.Body)
}
