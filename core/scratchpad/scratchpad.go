// Package scratchpad assembles the evolving prompt a reasoning run re-submits
// to the model each iteration. Content is append-only; when the estimated
// token count would exceed the configured limit, entries are evicted from the
// front (oldest first) while the original goal and the most recent entries
// are always preserved.
package scratchpad

import "strings"

// KeepLast is the minimum number of newest entries that survive eviction, so
// the model is never shown a prompt that has lost the latest observation or
// the thought that produced it.
const KeepLast = 2

// CharsPerToken is the cheap length-based token estimator: one token per
// four characters, rounding up.
const CharsPerToken = 4

// EstimateTokens returns the estimated token count of s.
func EstimateTokens(s string) int {
	if len(s) == 0 {
		return 0
	}
	return (len(s) + CharsPerToken - 1) / CharsPerToken
}

// Pad is one run's scratch-pad. It is owned by a single run and is not safe
// for concurrent use.
type Pad struct {
	goal     string
	preamble []string
	entries  []string
	limit    int
}

// New returns a scratch-pad seeded with the user goal and bounded by
// tokenLimit.
func New(goal string, tokenLimit int) *Pad {
	return &Pad{goal: goal, limit: tokenLimit}
}

// SetPreamble installs recalled memory entries shown between the goal and the
// iteration entries. The preamble, like the goal, is never evicted.
func (p *Pad) SetPreamble(entries []string) {
	p.preamble = append([]string(nil), entries...)
	p.evict()
}

// AppendThought records a reasoning-only model response.
func (p *Pad) AppendThought(text string) {
	p.append(text)
}

// AppendExchange records one completed iteration: the raw response, the
// action taken, and the resulting observation.
func (p *Pad) AppendExchange(response, action, observation string) {
	var b strings.Builder
	b.WriteString(response)
	if action != "" {
		b.WriteString("\nAction: ")
		b.WriteString(action)
	}
	b.WriteString("\nObservation: ")
	b.WriteString(observation)
	p.append(b.String())
}

// Render returns the prompt text: goal first, then the preamble, then each
// entry in order. Under no budget pressure each render is a strict prefix of
// the next, so the model's context only ever grows.
func (p *Pad) Render() string {
	parts := make([]string, 0, 1+len(p.preamble)+len(p.entries))
	parts = append(parts, p.goal)
	parts = append(parts, p.preamble...)
	parts = append(parts, p.entries...)
	return strings.Join(parts, "\n\n")
}

// Tokens returns the estimated token count of the current render.
func (p *Pad) Tokens() int {
	return EstimateTokens(p.Render())
}

// Remaining returns the token budget left under the limit. It can be
// negative when even the irreducible content (goal, preamble, newest
// entries) exceeds the limit.
func (p *Pad) Remaining() int {
	return p.limit - p.Tokens()
}

// Exhausted reports whether there is no budget left for another round.
func (p *Pad) Exhausted() bool {
	return p.Remaining() <= 0
}

// Entries returns a copy of the current iteration entries, oldest first.
func (p *Pad) Entries() []string {
	out := make([]string, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *Pad) append(entry string) {
	p.entries = append(p.entries, entry)
	p.evict()
}

// evict drops oldest entries until the render fits the limit or only the
// protected tail remains. The goal and preamble are never dropped.
func (p *Pad) evict() {
	for p.Tokens() > p.limit && len(p.entries) > KeepLast {
		p.entries = p.entries[1:]
	}
}
