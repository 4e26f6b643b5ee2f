// Package react implements the ReAct (Reasoning + Acting) loop: it drives a
// language model through repeated Thought → Action → Observation cycles,
// executing parsed tool actions and folding their results back into the
// prompt under a token budget, until the model produces a final answer or
// the run exhausts its iteration or context limits.
//
// The main entry point is [New], which binds a [Session] (completion
// capability plus tool registry) to a private copy of the configuration.
// [Loop.Run] executes one goal and returns a [Result] carrying the answer,
// the termination [Status], and the full [trace.Trace] of the run. Lifecycle
// notifications are delivered through [Hooks]; all hooks are optional and
// fire-and-forget.
package react
