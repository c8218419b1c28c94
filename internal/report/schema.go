package report

// Schema is the JSON Schema (Draft 2020-12) for the arith JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/arith/result-report.schema.json",
  "title": "Arith Result Report",
  "description": "Output schema for arith --format=json",
  "type": "object",
  "required": ["version", "results"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "results": {
      "type": "array",
      "items": { "$ref": "#/$defs/Result" }
    },
    "metadata": { "$ref": "#/$defs/Metadata" }
  },
  "$defs": {
    "Number": {
      "oneOf": [
        { "type": "number" },
        { "type": "string", "enum": ["NaN", "+Inf", "-Inf"] }
      ]
    },
    "Result": {
      "type": "object",
      "required": ["id", "operation", "operands", "outcome", "value"],
      "properties": {
        "id": {
          "type": "string",
          "pattern": "^op-[0-9a-f]{8}$",
          "description": "Stable identifier derived from operation and operands"
        },
        "operation": {
          "type": "string",
          "enum": ["add", "divide"]
        },
        "operands": {
          "type": "array",
          "items": { "$ref": "#/$defs/Number" },
          "minItems": 2,
          "maxItems": 2
        },
        "outcome": {
          "type": "string",
          "enum": ["Success", "DivisionByZero"]
        },
        "value": {
          "oneOf": [
            { "$ref": "#/$defs/Number" },
            { "type": "null" }
          ],
          "description": "Result value; null when the operation failed"
        },
        "error": {
          "type": "string",
          "description": "Failure message, present only on failure"
        }
      }
    },
    "Metadata": {
      "type": "object",
      "required": ["arith_version", "go_version", "duration_ms"],
      "properties": {
        "arith_version": { "type": "string" },
        "go_version": { "type": "string" },
        "duration_ms": {
          "type": "integer",
          "description": "Run duration in milliseconds"
        },
        "timestamp": {
          "type": "string",
          "description": "Run start time (RFC 3339)"
        }
      }
    }
  }
}`
