package parse

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

const (
	finalAnswerMarker = "Final Answer:"
	actionMarker      = "Action:"
	actionInputMarker = "Action Input:"
)

// Action is a single parsed tool invocation: the tool name from an "Action:"
// line and the flat named-argument mapping decoded from the "Action Input:"
// line. Args values are scalars only (string, number, bool or null).
type Action struct {
	Name string
	Args map[string]any
}

// Outcome is the verdict for one model response. Exactly one of three shapes
// holds: Final is true and Answer carries the final-answer text; Action is
// non-nil and carries a tool invocation; or neither, meaning the response is
// reasoning only and the loop should continue without acting.
type Outcome struct {
	Final  bool
	Answer string
	Action *Action
}

// None reports whether the outcome carries neither a final answer nor an action.
func (o Outcome) None() bool {
	return !o.Final && o.Action == nil
}

// Scan classifies a raw model response.
//
// A "Final Answer:" line is checked first and short-circuits everything else,
// so action-shaped content elsewhere in the same text is ignored. Otherwise
// the lines are scanned for the first "Action:" line and the first
// "Action Input:" line after it; later action blocks are ignored. "Thought:"
// lines and free text are tolerated anywhere.
//
// An "Action:" line whose input never arrives, or whose input text cannot be
// decoded into a flat scalar mapping even after a jsonrepair pass, yields the
// none outcome rather than an error.
func Scan(text string) Outcome {
	lines := strings.Split(text, "\n")

	for _, raw := range lines {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(raw), finalAnswerMarker); ok {
			return Outcome{Final: true, Answer: strings.TrimSpace(rest)}
		}
	}

	var pendingAction string
	seenAction := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if rest, ok := strings.CutPrefix(line, actionInputMarker); ok {
			if !seenAction {
				continue
			}
			args, decoded := decodeArgs(rest)
			if !decoded {
				return Outcome{}
			}
			return Outcome{Action: &Action{Name: pendingAction, Args: args}}
		}

		if rest, ok := strings.CutPrefix(line, actionMarker); ok && !seenAction {
			seenAction = true
			pendingAction = strings.TrimSpace(rest)
		}
	}

	return Outcome{}
}

// decodeArgs decodes the payload of an "Action Input:" line into a flat
// string-to-scalar mapping. Strict JSON is tried first; on failure the text
// gets one jsonrepair pass and a retry. Payloads that still do not decode,
// decode to null, or contain nested objects or arrays are rejected.
func decodeArgs(payload string) (map[string]any, bool) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, false
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(payload), &args); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(payload)
		if repairErr != nil {
			return nil, false
		}
		if err := json.Unmarshal([]byte(repaired), &args); err != nil {
			return nil, false
		}
	}
	if args == nil {
		return nil, false
	}

	for _, v := range args {
		switch v.(type) {
		case string, float64, bool, nil:
		default:
			return nil, false
		}
	}
	return args, true
}

// As decodes content into T, repairing the JSON once if strict decoding
// fails. It backs the typed tool adapter, which receives its input as the
// JSON re-encoding of an action's argument map.
func As[T any](content string) (T, error) {
	var result T
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return result, err
		}
		if retryErr := json.Unmarshal([]byte(repaired), &result); retryErr != nil {
			return result, retryErr
		}
	}
	return result, nil
}
