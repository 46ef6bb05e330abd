package http

import "testing"

func TestParseQuery(t *testing.T) {
	params := ParseQuery("a=1&b=2")

	if params["a"] != "1" || params["b"] != "2" {
		t.Errorf("unexpected params: %v", params)
	}
}

func TestParseQueryLastValueWins(t *testing.T) {
	params := ParseQuery("a=1&a=2&json=true")

	if params["a"] != "2" {
		t.Errorf("expected last value to win, got %s", params["a"])
	}
	if params["json"] != "true" {
		t.Errorf("expected true, got %s", params["json"])
	}
}

func TestParseQueryDropsEmptyAndBareSegments(t *testing.T) {
	params := ParseQuery("&&a=1&novalue&")

	if len(params) != 1 {
		t.Errorf("expected single param, got %v", params)
	}
	if _, found := params["novalue"]; found {
		t.Error("segment without '=' should be dropped")
	}
}

func TestParseQueryUnescapes(t *testing.T) {
	params := ParseQuery("msg=hello%20world&name=a+b")

	if params["msg"] != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", params["msg"])
	}
	if params["name"] != "a b" {
		t.Errorf("expected %q, got %q", "a b", params["name"])
	}
}

func TestParseQueryKeepsInvalidEscape(t *testing.T) {
	params := ParseQuery("a=100%zz")

	if params["a"] != "100%zz" {
		t.Errorf("invalid escape should pass through, got %q", params["a"])
	}
}
