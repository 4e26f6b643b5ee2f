// Package config holds the validated, per-run configuration of the reasoning
// loop. A [Config] is a plain value: applying an [Update] produces a new
// value or an error, never a partially-mutated one. [Load] reads defaults
// from the environment (after an optional .env load via godotenv).
package config
