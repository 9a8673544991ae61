package rules

// ExclusionSet is an ordered list of normalized extension tokens
type ExclusionSet []string
