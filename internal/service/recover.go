package service

import (
	"encoding/json"
	"strings"

	"github.com/loismiguel15/backendgemini/internal/domain"
)

// recoverJSON extracts a generic JSON value from raw model output. Models
// wrap the payload in prose or markdown fences despite instructions not to,
// so after a failed whole-text parse the substring between the first '{' and
// the last '}' is tried. Anything beyond that is a MalformedOutputError.
// Shape judgements (object or not, questions present or not) belong to the
// sanitizer, not here.
func recoverJSON(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)

	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err == nil {
		return value, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return nil, domain.NewMalformedOutputError(raw, nil)
	}

	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &value); err != nil {
		return nil, domain.NewMalformedOutputError(raw, err)
	}
	return value, nil
}
