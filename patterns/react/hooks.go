package react

// Hooks are the lifecycle notifications the loop emits for the presentation
// layer. Every field is optional; a nil hook is skipped. The loop never
// depends on a hook's side effects or timing — hooks are fire-and-forget.
type Hooks struct {
	// OnIteration fires at the top of each iteration with the 1-based index
	// and the configured maximum.
	OnIteration func(index, max int)

	// OnResponse fires with the raw model text of each completion.
	OnResponse func(text string)

	// OnAction fires when a response parses to a tool invocation.
	OnAction func(name string, args map[string]any)

	// OnObservation fires with the tool result text.
	OnObservation func(text string)

	// OnFinalAnswer fires once, when the model produces a final answer.
	OnFinalAnswer func(text string)
}

func (h Hooks) emitIteration(index, max int) {
	if h.OnIteration != nil {
		h.OnIteration(index, max)
	}
}

func (h Hooks) emitResponse(text string) {
	if h.OnResponse != nil {
		h.OnResponse(text)
	}
}

func (h Hooks) emitAction(name string, args map[string]any) {
	if h.OnAction != nil {
		h.OnAction(name, args)
	}
}

func (h Hooks) emitObservation(text string) {
	if h.OnObservation != nil {
		h.OnObservation(text)
	}
}

func (h Hooks) emitFinalAnswer(text string) {
	if h.OnFinalAnswer != nil {
		h.OnFinalAnswer(text)
	}
}
