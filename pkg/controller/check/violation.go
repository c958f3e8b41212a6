package check

// Violation is a Python file whose line count exceeds the limit.
type Violation struct {
	Path      string
	LineCount int
}
