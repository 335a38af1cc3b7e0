package parser

import (
	"encoding/json"

	"github.com/projectstage/config-backend/internal/projects/domain"
)

// Parse decodes raw into a validated ProjectDescriptor. Malformed JSON
// fails with a DecodeError; a missing id or name, or a status outside the
// known set, fails with a ValidationError naming the field. There are no
// partial results.
func Parse(raw []byte) (domain.ProjectDescriptor, error) {
	var desc domain.ProjectDescriptor
	if err := json.Unmarshal(raw, &desc); err != nil {
		return domain.ProjectDescriptor{}, &domain.DecodeError{Err: err}
	}

	if desc.ID == "" {
		return domain.ProjectDescriptor{}, &domain.ValidationError{Field: "id", Reason: "is required"}
	}
	if desc.Name == "" {
		return domain.ProjectDescriptor{}, &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if !domain.ValidStatus(desc.Status) {
		return domain.ProjectDescriptor{}, &domain.ValidationError{Field: "status", Reason: "must be active, archived or deleted"}
	}

	return desc, nil
}

// ExtractID pulls just the id out of raw. The upload endpoint uses it to
// reject submissions without a usable id before anything touches disk;
// full validation happens at ingestion time.
func ExtractID(raw []byte) (string, error) {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", &domain.DecodeError{Err: err}
	}
	if probe.ID == "" {
		return "", &domain.ValidationError{Field: "id", Reason: "is required"}
	}
	return probe.ID, nil
}
