// Package report renders a runner.Summary for human or machine
// consumption: indented JSON for tooling, and an ajstarks/svgo bar
// chart of property outcomes for a quick visual summary. Rendering
// stays a consumer of the runner's structured results rather than
// something the engine itself performs.
package report
