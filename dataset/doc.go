// Package dataset loads diffusion graphs from disk.
//
// Two formats are supported:
//
//   - JSON adjacency: a top-level array whose first element is an object with
//     index-aligned "inList", "inWeight", "outList", "outWeight" and
//     "usernameList" arrays. A bare object is accepted as well.
//   - Edge list: one "from to [weight]" record per line, whitespace
//     separated; blank lines and lines starting with '#' are skipped; the
//     weight defaults to 1. Endpoints are labels, numbered in order of first
//     appearance.
//
// Both produce a Dataset, which turns into a core.Graph via Graph and maps
// node ids back to labels via Label.
package dataset
