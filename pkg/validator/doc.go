// Package validator provides small, generic, named validation rules for form
// field values.
//
// A Rule[T] pairs a rule name with a pure predicate and optional parameters.
// Rules are evaluated with Apply, which returns the failures as an ordered
// Violations slice that satisfies the error interface. Rule names are the keys
// message tables use to render failures, see the Rule* constants.
//
// # Empty values
//
// Only Required and PhoneNumber fail on an empty value. Every other rule treats
// the zero value as "not filled in" and passes, so a blank field reports a single
// "required" violation instead of a cascade.
//
// # Usage
//
//	rules := []validator.Rule[string]{
//	    validator.Required[string](),
//	    validator.Email(),
//	    validator.MinLength[string](3),
//	}
//	if vs := validator.Apply(value, rules...); !vs.IsEmpty() {
//	    // vs.Rules() == []string{"email"}
//	}
//
// All helpers are stateless and goroutine-safe.
package validator
