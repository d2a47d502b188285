// Package selection implements capability-based provider selection: a
// registry of backend factories, a scoring selector that ranks the available
// factories against a per-request [imagegen.SelectionContext], and a fallback
// selector that retries with exclusions when selection fails.
//
// Scoring is dominated by an explicit provider preference, then model fit,
// then the factory's static priority; backends that cannot serve the required
// operation or model are excluded outright. See [NewSelector] and
// [NewFallbackSelector].
package selection
