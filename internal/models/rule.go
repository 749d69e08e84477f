package models

// Rule maps a normalized description fragment to a category. Rules are
// matched in the order they were first learned.
type Rule struct {
	Pattern  string `json:"pattern" yaml:"pattern"`
	Category string `json:"category" yaml:"category"`
}
