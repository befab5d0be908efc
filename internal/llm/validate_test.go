package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-evaluation",
		Description: "A test evaluation object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"result": map[string]any{"type": "string", "enum": []any{"correct", "partial", "incorrect"}},
				"score":  map[string]any{"type": []any{"number", "string"}},
			},
			"required": []any{"result", "score"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"result":"partial","score":60}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_StringScoreAccepted(t *testing.T) {
	// The score union must admit numeric strings; the grading service
	// does the actual parsing and clamping.
	raw := json.RawMessage(`{"result":"correct","score":"85"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"result":"correct"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"result":"excellent","score":90}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NullScoreRejected(t *testing.T) {
	raw := json.RawMessage(`{"result":"correct","score":null}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for null score")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestCleanAndValidate_FencedContent(t *testing.T) {
	fenced := json.RawMessage("```json\n{\"result\":\"partial\",\"score\":60}\n```")

	cleaned, err := cleanAndValidate(testSchema(), fenced)
	if err != nil {
		t.Fatalf("expected fenced content to clean and validate, got: %v", err)
	}
	if string(cleaned) != `{"result":"partial","score":60}` {
		t.Fatalf("unexpected cleaned content: %s", cleaned)
	}
}

func TestCleanAndValidate_CommentaryStripped(t *testing.T) {
	wrapped := json.RawMessage(`Here is the grade: {"result":"incorrect","score":10} Hope it helps!`)

	cleaned, err := cleanAndValidate(testSchema(), wrapped)
	if err != nil {
		t.Fatalf("expected commentary to be stripped, got: %v", err)
	}
	if string(cleaned) != `{"result":"incorrect","score":10}` {
		t.Fatalf("unexpected cleaned content: %s", cleaned)
	}
}

func TestCleanAndValidate_NoObject(t *testing.T) {
	_, err := cleanAndValidate(testSchema(), json.RawMessage(`no json here`))
	if err == nil {
		t.Fatal("expected error when no object is present")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCleanAndValidate_InvalidAfterExtraction(t *testing.T) {
	fenced := json.RawMessage("```json\n{\"result\":\"excellent\",\"score\":90}\n```")
	if _, err := cleanAndValidate(testSchema(), fenced); err == nil {
		t.Fatal("expected extracted object to still fail schema validation")
	}
}
