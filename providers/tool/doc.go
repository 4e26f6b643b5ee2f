// Package tool defines the closed capability interface through which the
// reasoning loop invokes external operations, a case-insensitive [Registry]
// built once per session, and the [Executor] that resolves and runs
// capabilities without ever letting a failure escape its boundary.
//
// Capabilities come in two flavors: [NewFunc] wraps a plain function over a
// named-argument map, and [New] binds a strongly-typed Go function whose
// input struct is decoded from the arguments with the same repair-tolerant
// JSON handling used for action parsing.
package tool
