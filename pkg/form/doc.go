// Package form implements a validated form tree: typed fields with sync and
// async rules, named groups, resizable collections and a controller that
// drives the tree through path addressed commands.
//
// # Tree
//
// A tree is built from three node kinds:
//
//   - Field[T] holds a value and an ordered rule set. Sync rules run on every
//     mutation. An optional AsyncRule is dispatched according to the field's
//     Trigger (OnChange, OnBlur or OnSubmit) and only when all sync rules pass.
//   - Group maps names to children in a fixed order.
//   - Collection holds items built from a template. Removal may be vetoed by a
//     Guard such as MinItems, UnlessRule or an ExprGuard expression.
//
// Nodes are addressed with dot separated paths: "personal.emails.0.email".
//
// # Async results
//
// Async checks run in their own goroutines and are tagged with the value they
// were started for. A result is applied only if the field still holds that
// value; results for older values are dropped. A field with a check in flight
// is Pending and never Valid. Form.Settle and Form.Submit wait for in-flight
// checks.
//
// # Errors
//
// Collector walks a tree and renders every violation as "<label> <message>"
// using a Messages table loaded from YAML. A violation whose rule has no
// message fails with *UnknownRuleError.
//
// # Usage
//
//	root := form.NewGroup(
//	    form.Child("firstName", form.NewField("", form.WithRules(validator.Required[string]()))),
//	    form.Child("emails", form.NewCollection(emailItem, form.WithItems(1))),
//	)
//	f := form.New(root, buildUser, form.WithLogger[User](log))
//	state, err := f.OnFieldChange("firstName", "Vex'ahlia")
//	out, err := f.Submit(ctx)
package form
