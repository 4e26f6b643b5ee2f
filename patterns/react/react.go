package react

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/leofalp/reactor/core/config"
	"github.com/leofalp/reactor/core/parse"
	"github.com/leofalp/reactor/core/scratchpad"
	"github.com/leofalp/reactor/core/trace"
	"github.com/leofalp/reactor/providers/ai"
	"github.com/leofalp/reactor/providers/memory"
	"github.com/leofalp/reactor/providers/observability"
	"github.com/leofalp/reactor/providers/tool"
)

// memoryRecallLimit caps how many recalled entries are folded into the
// scratch-pad preamble at run start.
const memoryRecallLimit = 5

// Session is what the external driver supplies for a run: a completion
// capability and the tool capabilities addressed by name. The loop holds a
// non-owning reference for the run's duration only; session lifetime is
// managed by the host.
type Session struct {
	Model ai.Completer
	Tools *tool.Registry
}

// Status describes how a run terminated.
type Status string

const (
	// StatusFinalAnswer means the model produced a final answer.
	StatusFinalAnswer Status = "final_answer"

	// StatusIterationExhausted means the iteration cap was reached without a
	// final answer.
	StatusIterationExhausted Status = "iteration_exhausted"

	// StatusBudgetExhausted means the context token budget left no room for
	// another round.
	StatusBudgetExhausted Status = "budget_exhausted"

	// StatusError means the run aborted: the completion capability failed or
	// the run was cancelled. The accompanying error carries the cause.
	StatusError Status = "error"
)

// Result is what a run hands back to the caller.
type Result struct {
	// Answer is the final-answer text; empty unless Status is
	// StatusFinalAnswer.
	Answer string

	// Status describes the termination.
	Status Status

	// Trace is the full, append-only record of the run — partial when the
	// run aborted.
	Trace *trace.Trace

	// Scratchpad is the final rendered prompt, populated only when the run
	// was configured with SaveScratchpad.
	Scratchpad string
}

// Loop is the ReAct orchestrator. Each Loop owns its configuration copy and
// per-run state; independent loops may run concurrently with no shared
// state, but a single Loop executes at most one run at a time.
type Loop struct {
	mu      sync.Mutex
	running bool
	cfg     config.Config

	session  Session
	hooks    Hooks
	memory   memory.Provider
	observer observability.Observer
}

// LoopOption configures a [Loop] at construction.
type LoopOption func(*Loop)

// WithConfig replaces the default configuration template. The value is
// copied; later changes to the caller's copy do not affect the loop.
func WithConfig(cfg config.Config) LoopOption {
	return func(l *Loop) {
		l.cfg = cfg
	}
}

// WithHooks installs the lifecycle notification hooks.
func WithHooks(hooks Hooks) LoopOption {
	return func(l *Loop) {
		l.hooks = hooks
	}
}

// WithMemory attaches the long-term memory collaborator consulted when the
// configuration enables include_memory.
func WithMemory(provider memory.Provider) LoopOption {
	return func(l *Loop) {
		l.memory = provider
	}
}

// WithObserver attaches an observer for structured logging and spans. An
// observer carried by the run context takes precedence per run.
func WithObserver(obs observability.Observer) LoopOption {
	return func(l *Loop) {
		if obs != nil {
			l.observer = obs
		}
	}
}

// New builds a loop over the given session. The configuration starts from
// the process-wide default template unless [WithConfig] overrides it, and is
// validated here so a loop can never start with out-of-range settings.
func New(session Session, options ...LoopOption) (*Loop, error) {
	if session.Model == nil {
		return nil, fmt.Errorf("session has no completion capability")
	}

	l := &Loop{
		session:  session,
		cfg:      config.Default(),
		observer: observability.Nop(),
	}
	for _, option := range options {
		option(l)
	}

	if err := l.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return l, nil
}

// Config returns the loop's current configuration.
func (l *Loop) Config() config.Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg
}

// Configure applies a validated configuration update between runs. A
// rejected update is reported synchronously and leaves the prior
// configuration untouched; updates during an active run are refused.
func (l *Loop) Configure(update config.Update) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return ErrRunActive
	}
	next, err := l.cfg.Apply(update)
	if err != nil {
		return err
	}
	l.cfg = next
	return nil
}

// Run drives the loop for one user goal until termination and returns the
// result plus the full trace.
//
// The run is strictly sequential: each iteration requests one completion
// over the accumulated scratch-pad, parses it, executes at most one tool
// action, and folds the observation back into the context. Reasoning-only
// responses count toward the iteration cap, so termination is guaranteed
// even when the model never answers.
//
// Cancellation is checked at the top of each iteration, before a new
// completion request is issued. A completion failure terminates the run with
// [StatusError] and an error wrapping [ErrCompletionFailed]; the partial
// trace is still returned for inspection.
func (l *Loop) Run(ctx context.Context, goal string) (*Result, error) {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return nil, ErrRunActive
	}
	l.running = true
	cfg := l.cfg
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	obs := l.observer
	if fromCtx := observability.ObserverFromContext(ctx); fromCtx != nil {
		obs = fromCtx
	}

	ctx, span := obs.StartSpan(ctx, "react.run",
		observability.Int("max_iterations", cfg.MaxIterations),
		observability.Int("context_tokens_limit", cfg.ContextTokensLimit),
	)
	defer span.End()

	tr := trace.New()
	pad := scratchpad.New(goal, cfg.ContextTokensLimit)
	l.recallMemory(ctx, obs, cfg, goal, pad)

	executor := tool.NewExecutor(l.session.Tools, tool.WithObserver(obs))

	finish := func(status Status, answer string) *Result {
		res := &Result{Answer: answer, Status: status, Trace: tr}
		if cfg.SaveScratchpad {
			res.Scratchpad = pad.Render()
		}
		return res
	}

	for i := 0; i < cfg.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			obs.Warn(ctx, "run cancelled", observability.Int("iteration", i+1))
			return finish(StatusError, ""), err
		}

		l.hooks.emitIteration(i+1, cfg.MaxIterations)
		obs.Debug(ctx, "iteration started",
			observability.Int("index", i+1),
			observability.Int("max", cfg.MaxIterations),
			observability.Int("prompt_tokens", pad.Tokens()),
		)

		response, err := l.session.Model.Complete(ctx, pad.Render())
		if err != nil {
			span.RecordError(err)
			obs.Error(ctx, "completion failed", observability.Error(err))
			return finish(StatusError, ""), fmt.Errorf("%w: %v", ErrCompletionFailed, err)
		}
		l.hooks.emitResponse(response)

		outcome := parse.Scan(response)
		switch {
		case outcome.Final:
			l.hooks.emitFinalAnswer(outcome.Answer)
			tr.Append(trace.Step{Index: i, Response: response, Final: true})
			obs.Info(ctx, "run finished",
				observability.String("status", string(StatusFinalAnswer)),
				observability.Int("iterations", i+1),
			)
			return finish(StatusFinalAnswer, outcome.Answer), nil

		case outcome.Action != nil:
			action := outcome.Action
			l.hooks.emitAction(action.Name, action.Args)
			span.AddEvent("action", observability.String("tool", action.Name))

			observation := executor.Execute(ctx, action.Name, action.Args)
			l.hooks.emitObservation(observation)

			tr.Append(trace.Step{Index: i, Response: response, Action: action, Observation: observation})
			pad.AppendExchange(response, formatAction(action), observation)

		default:
			// Thinking without acting: keep the raw text in context and
			// spend an iteration on it.
			tr.Append(trace.Step{Index: i, Response: response})
			pad.AppendThought(response)
		}

		if pad.Exhausted() {
			obs.Warn(ctx, "context budget exhausted",
				observability.Int("tokens", pad.Tokens()),
				observability.Int("limit", cfg.ContextTokensLimit),
			)
			return finish(StatusBudgetExhausted, ""), nil
		}
	}

	obs.Warn(ctx, "iteration cap reached", observability.Int("max", cfg.MaxIterations))
	return finish(StatusIterationExhausted, ""), nil
}

// recallMemory folds recalled entries into the scratch-pad preamble. Recall
// failure is non-fatal: the run proceeds without memory.
func (l *Loop) recallMemory(ctx context.Context, obs observability.Observer, cfg config.Config, goal string, pad *scratchpad.Pad) {
	if !cfg.IncludeMemory || l.memory == nil {
		return
	}
	entries, err := l.memory.Recall(ctx, goal, memoryRecallLimit)
	if err != nil {
		obs.Warn(ctx, "memory recall failed", observability.Error(err))
		return
	}
	if len(entries) == 0 {
		return
	}
	preamble := make([]string, len(entries))
	for i, entry := range entries {
		preamble[i] = "Memory: " + entry
	}
	pad.SetPreamble(preamble)
}

// formatAction renders an action for the scratch-pad. Map keys are emitted
// in sorted order by encoding/json, so the rendering is deterministic.
func formatAction(action *parse.Action) string {
	args, err := json.Marshal(action.Args)
	if err != nil {
		return action.Name
	}
	return action.Name + " " + string(args)
}
