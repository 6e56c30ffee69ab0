package oracle

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseResult(t *testing.T) {
	result, err := parseResult(json.RawMessage(`{"result":" 2 x "}`))
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if result != "2 x" {
		t.Errorf("result = %q", result)
	}
}

func TestParseResultRejectsBadPayloads(t *testing.T) {
	cases := []string{
		`not json`,
		`{}`,
		`{"result":""}`,
		`{"result":42}`,
		`{"result":"x","extra":true}`,
	}
	for _, raw := range cases {
		_, err := parseResult(json.RawMessage(raw))
		var invalid *ErrInvalidResult
		if !errors.As(err, &invalid) {
			t.Errorf("parseResult(%s) err = %v, want ErrInvalidResult", raw, err)
		}
	}
}
