package llm

// JSON schema for the structured generation mode. Mirrors
// core.AgentResponse field for field; providers that honor json_schema
// return content decoding cleanly into it.
const agentResponseSchema = `{
  "type": "object",
  "properties": {
    "message": {"type": "string"},
    "reasoning_steps": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "step_number": {"type": "integer"},
          "description": {"type": "string"},
          "kind": {
            "type": "string",
            "enum": ["analysis", "synthesis", "hypothesis", "evidence_review", "conclusion"]
          },
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        },
        "required": ["step_number", "description", "kind", "confidence"],
        "additionalProperties": false
      }
    },
    "follow_up_questions": {"type": "array", "items": {"type": "string"}},
    "investigative_leads": {"type": "array", "items": {"type": "string"}},
    "confidence_assessment": {
      "type": "object",
      "properties": {
        "overall": {"type": "number", "minimum": 0, "maximum": 1},
        "reasoning": {"type": "string"},
        "limitations": {"type": "array", "items": {"type": "string"}}
      },
      "required": ["overall", "reasoning", "limitations"],
      "additionalProperties": false
    }
  },
  "required": ["message", "reasoning_steps", "follow_up_questions", "investigative_leads", "confidence_assessment"],
  "additionalProperties": false
}`
