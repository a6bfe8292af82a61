package bridge

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// The extension's inter-component messages form a closed tagged union: one
// variant per message type, each with a fixed payload shape, validated
// against a JSON schema. An unknown type is a protocol error, not a
// fallback branch.

//go:embed schemas/*.json
var schemaFiles embed.FS

// MessageType discriminates protocol messages.
type MessageType string

// Protocol message types.
const (
	MsgExtractPage    MessageType = "extract_page"
	MsgResolveURL     MessageType = "resolve_url"
	MsgGenerate       MessageType = "generate"
	MsgStatus         MessageType = "status"
	MsgJobPosting     MessageType = "job_posting"
	MsgCanonicalURL   MessageType = "canonical_url"
	MsgGenerationDone MessageType = "generation_done"
	MsgError          MessageType = "error"
)

// messageSchemas maps each type to its embedded schema file.
var messageSchemas = map[MessageType]string{
	MsgExtractPage:    "schemas/extract_page.json",
	MsgResolveURL:     "schemas/resolve_url.json",
	MsgGenerate:       "schemas/generate.json",
	MsgStatus:         "schemas/status.json",
	MsgJobPosting:     "schemas/job_posting.json",
	MsgCanonicalURL:   "schemas/canonical_url.json",
	MsgGenerationDone: "schemas/generation_done.json",
	MsgError:          "schemas/error.json",
}

// Envelope is the wire shape every protocol message shares.
type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ProtocolError reports a message that does not conform to the protocol.
type ProtocolError struct {
	Type    MessageType
	Message string
}

func (e *ProtocolError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("protocol error in %q message: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("protocol error: %s", e.Message)
}

// ValidateMessage parses raw as an envelope and validates its payload
// against the schema for its type.
func ValidateMessage(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ProtocolError{Message: "not a valid message envelope: " + err.Error()}
	}

	schemaPath, ok := messageSchemas[env.Type]
	if !ok {
		return nil, &ProtocolError{Type: env.Type, Message: "unknown message type"}
	}

	schemaData, err := schemaFiles.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}

	payload := env.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return nil, &ProtocolError{Type: env.Type, Message: "payload is not valid JSON: " + err.Error()}
	}
	if !result.Valid() {
		msg := "payload does not match schema"
		if errs := result.Errors(); len(errs) > 0 {
			msg = errs[0].String()
		}
		return nil, &ProtocolError{Type: env.Type, Message: msg}
	}

	return &env, nil
}
