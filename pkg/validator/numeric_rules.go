package validator

// Min fails when a non-zero value is below min. The zero value is treated as
// unset and left to Required.
func Min[T Numeric](min T) Rule[T] {
	var zero T
	return Rule[T]{
		Name: RuleMin,
		Check: func(v T) bool {
			return v == zero || v >= min
		},
		Params: map[string]any{"min": min},
	}
}

// Max fails when a value is above max.
func Max[T Numeric](max T) Rule[T] {
	return Rule[T]{
		Name: RuleMax,
		Check: func(v T) bool {
			return v <= max
		},
		Params: map[string]any{"max": max},
	}
}

// Between is shorthand for Min and Max over the same field.
func Between[T Numeric](min, max T) []Rule[T] {
	return []Rule[T]{Min(min), Max(max)}
}
