package controls

// PercentControl edits Percent fields. Percentages are a float subtype for
// editing and formatting, so the control is a thin delegate around
// FloatControl: the shared logic already excludes non-Float field types from
// explicit currency patterns, which keeps Percent on the formatter default.
type PercentControl struct {
	*FloatControl
}

var _ Control = (*PercentControl)(nil)

// NewPercent constructs the Percent control sharing the Float behavior.
func NewPercent(deps Deps) *PercentControl {
	return &PercentControl{FloatControl: NewFloat(deps)}
}
