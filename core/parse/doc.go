// Package parse turns raw language-model output into a discrete verdict:
// a final answer, a single tool action, or nothing actionable.
//
// The wire format is newline-delimited. Zero or more "Thought:" lines may
// appear anywhere; a line beginning with "Final Answer:" terminates the
// response; otherwise an "Action:" line followed (not necessarily adjacently)
// by an "Action Input:" line names a tool and its JSON-encoded arguments.
// Argument text that is not valid JSON gets one repair pass via jsonrepair
// before being given up on. Malformed input never produces an error — the
// caller treats it as a reasoning-only response.
package parse
