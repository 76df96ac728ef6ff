// Package solo contains single-value, context-aware railway steps built on
// rop.Result. They are the building blocks used by chain and flow.
//
// Highlights:
// - Validate/AndValidate: reject input with a catalog ErrorInfo
// - ValidateAll: run several checks, stopping at or collecting failures
// - Switch: move from Result[In] to Result[Out] (AndThen with a context)
// - Map: transform successful values
// - Try: call a (Out, error) function and classify the error
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
