package main

import (
	"encoding/json"
	"fmt"

	"github.com/freekieb7/pebble/http"
)

const greeting = "Hello from Pebble!"

func handleGreeting(ctx *http.RequestCtx) {
	ctx.Response.WithText(greeting)
}

// handleQueryEcho echoes the route and the query parameters back, as JSON
// when the json=true flag is set and as plain text otherwise.
func handleQueryEcho(ctx *http.RequestCtx) {
	query := http.ParseQuery(ctx.Request.RawQuery)

	if query["json"] == "true" {
		ctx.Response.WithJson(struct {
			Route string            `json:"route"`
			Query map[string]string `json:"query"`
		}{
			Route: ctx.Request.Path,
			Query: query,
		})
		return
	}

	ctx.Response.WithText(fmt.Sprintf("Route: %s, Query: %v", ctx.Request.Path, query))
}

// handleBodyEcho wraps the posted body in a JSON envelope. The body is
// embedded verbatim when it is itself valid JSON and re-encoded as a JSON
// string otherwise, so the envelope never turns into invalid JSON. No body
// gives an empty object.
func handleBodyEcho(ctx *http.RequestCtx) {
	body := ctx.Request.BodyRaw

	embedded := json.RawMessage("{}")
	switch {
	case len(body) == 0:
	case json.Valid(body):
		embedded = json.RawMessage(body)
	default:
		embedded, _ = json.Marshal(string(body))
	}

	ctx.Response.WithJson(struct {
		Route string          `json:"route"`
		Body  json.RawMessage `json:"body"`
	}{
		Route: ctx.Request.Path,
		Body:  embedded,
	})
}
