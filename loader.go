package flagkit

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"github.com/flagkit/flagkit-go/flagengine/flags"
)

// configurationSchema is the shape of a configuration document. Documents are
// validated against it before decoding so that malformed configuration is
// rejected with a description of what is wrong rather than a decode error.
// Filter parameters are an open object here; their per-kind validation
// happens in the filter factories.
const configurationSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["flags"],
  "additionalProperties": false,
  "properties": {
    "flags": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "combinator": {"enum": ["ALL", "ANY"]},
          "default": {"type": "boolean"},
          "filters": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["kind"],
              "additionalProperties": false,
              "properties": {
                "kind": {"type": "string", "minLength": 1},
                "parameters": {"type": "object"}
              }
            }
          }
        }
      }
    }
  }
}`

type configurationDocument struct {
	Flags []flags.FlagConfiguration `json:"flags"`
}

// ParseConfiguration validates and decodes a configuration document of the
// form {"flags": [...]}. It performs no I/O; reading and watching files is
// the caller's concern.
func ParseConfiguration(raw []byte) ([]flags.FlagConfiguration, error) {
	schemaLoader := gojsonschema.NewStringLoader(configurationSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, err
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, &SchemaValidationError{Problems: problems}
	}

	var doc configurationDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc.Flags, nil
}
