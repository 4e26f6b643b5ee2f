// Package ai declares the narrow contract the reasoning loop consumes from a
// language-model session. Concrete provider integrations (OpenAI, Gemini,
// local models) live outside this module and satisfy [Completer].
package ai
