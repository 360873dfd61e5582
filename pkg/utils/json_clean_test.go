package utils

import "testing"

func TestCleanJSONResponseStripsFences(t *testing.T) {
	raw := "```json\n{\"mood_label\": \"good\"}\n```"
	want := `{"mood_label": "good"}`
	if got := CleanJSONResponse(raw); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanJSONResponseDropsSurroundingProse(t *testing.T) {
	raw := "Sure! Here is the analysis you asked for:\n{\"mood_label\": \"low\"}\nLet me know if you need anything else."
	want := `{"mood_label": "low"}`
	if got := CleanJSONResponse(raw); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanJSONResponseHandlesNestedBraces(t *testing.T) {
	raw := `noise {"a": {"b": "}"}, "c": [1, 2]} trailing`
	want := `{"a": {"b": "}"}, "c": [1, 2]}`
	if got := CleanJSONResponse(raw); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanJSONResponseArray(t *testing.T) {
	raw := "```\n[{\"quote\": \"x\"}]\n```"
	want := `[{"quote": "x"}]`
	if got := CleanJSONResponse(raw); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanJSONResponsePassthrough(t *testing.T) {
	raw := `{"already": "clean"}`
	if got := CleanJSONResponse(raw); got != raw {
		t.Errorf("got %q, want unchanged input", got)
	}
}
