package types

// Endpoint stores one API operation discovered under a spec's paths mapping.
// The (Path, Method) pair is its only identity; duplicates are preserved in
// the order they were encountered.
type Endpoint struct {
	Method  string
	Path    string
	Summary string
}
