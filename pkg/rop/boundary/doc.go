// Package boundary is a reference adapter that turns an rop.Outcome into a
// transport response.
//
// It leaves the Result through rop.Match and dispatches failures on their
// Category only; the message is never inspected. Unexpected failures become
// a generic server error whose body hides the original code and message,
// and the full ErrorInfo is logged together with the Result id so the two
// can be correlated. Anticipated failures are logged at debug level.
//
// The adapter is optional: transports with their own wire format only need
// to honour the same dispatch rules.
package boundary
