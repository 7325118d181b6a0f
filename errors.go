package ivms101

import "fmt"

// Shape error codes (exported consts for matching by convention rather than
// by message text).
const (
	CodeTooLong       = "too_long"
	CodeWrongLength   = "wrong_length"
	CodeRequired      = "required"
	CodeInvalidEnum   = "invalid_enum"
	CodeNoVariant     = "no_variant"
	CodeInvalidFormat = "invalid_format"
)

// ShapeError reports a construction or decode failure: a bounded value out
// of range, a required-nonempty container left empty, or input matching no
// variant of an untagged shape. It is always fatal to the operation that
// raised it.
type ShapeError struct {
	Code    string // One of the codes listed above.
	Message string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func shapeErrorf(code, format string, args ...any) *ShapeError {
	return &ShapeError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Rule identifies one of the IVMS101 cross-field business rules.
type Rule string

const (
	RuleC1  Rule = "C1"
	RuleC2  Rule = "C2"
	RuleC3  Rule = "C3"
	RuleC4  Rule = "C4"
	RuleC5  Rule = "C5"
	RuleC6  Rule = "C6"
	RuleC7  Rule = "C7"
	RuleC8  Rule = "C8"
	RuleC9  Rule = "C9"
	RuleC10 Rule = "C10"
	RuleC11 Rule = "C11"
	RuleC12 Rule = "C12"
)

// ValidationError reports a violated business rule. Its message always ends
// with the literal tag "(IVMS101 C<n>)" for the rule in question.
type ValidationError struct {
	Rule   Rule
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (IVMS101 %s)", e.Detail, e.Rule)
}

func violation(rule Rule, detail string) error {
	return &ValidationError{Rule: rule, Detail: detail}
}

// Validatable is implemented by every schema entity. Validate returns nil or
// the first business-rule violation found in a fixed traversal order; it
// never mutates the receiver.
type Validatable interface {
	Validate() error
}
