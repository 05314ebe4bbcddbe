// Package validation checks queued operation payloads before dispatch.
// A payload that fails validation is non-retryable: the operation is
// dropped and the entity waits for rediscovery with a fresh snapshot.
package validation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/notesync/internal/models"
)

var validate = validator.New()

// DecodeGroupPayload parses and validates a group operation payload.
func DecodeGroupPayload(data json.RawMessage) (*models.GroupPayload, error) {
	var payload models.GroupPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("malformed group payload: %w", err)
	}

	if err := validate.Struct(&payload); err != nil {
		return nil, fmt.Errorf("invalid group payload: %w", err)
	}

	return &payload, nil
}

// DecodeNotePayload parses and validates a note operation payload.
func DecodeNotePayload(data json.RawMessage) (*models.NotePayload, error) {
	var payload models.NotePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("malformed note payload: %w", err)
	}

	if err := validate.Struct(&payload); err != nil {
		return nil, fmt.Errorf("invalid note payload: %w", err)
	}

	return &payload, nil
}
