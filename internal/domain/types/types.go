// Package types contains common types used across the scoring domain.
package types

// Category identifies one of the four scoring dimensions.
type Category string

const (
	CategoryContent     Category = "content"
	CategoryReadability Category = "readability"
	CategoryTechnical   Category = "technical"
	CategoryKeyword     Category = "keyword"
)

// Categories returns the scoring dimensions in evaluation order.
// Aggregation and check ordering both follow this order.
func Categories() []Category {
	return []Category{
		CategoryContent,
		CategoryReadability,
		CategoryTechnical,
		CategoryKeyword,
	}
}

// Valid reports whether the category is one of the four known dimensions.
func (c Category) Valid() bool {
	switch c {
	case CategoryContent, CategoryReadability, CategoryTechnical, CategoryKeyword:
		return true
	default:
		return false
	}
}

// Status is the outcome of a single check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// Valid reports whether the status is a known outcome.
func (s Status) Valid() bool {
	switch s {
	case StatusPass, StatusWarning, StatusFail:
		return true
	default:
		return false
	}
}

// Priority indicates how urgent a check's remediation is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether the priority is a known level.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}
