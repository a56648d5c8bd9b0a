// Package naming derives deterministic Azure resource names from a small
// set of caller-supplied components (prefix, environment, region, suffix)
// and a resource-type vocabulary.
//
// Names follow the pattern {prefix}-{type}-{environment}-{region}-{suffix},
// omitting absent components. Per-class sanitization enforces Azure naming
// constraints: general resources allow [a-z0-9-] up to 63 characters,
// storage-account style names allow [a-z0-9] up to 24. The whole package is
// pure string computation with no state between invocations.
package naming
