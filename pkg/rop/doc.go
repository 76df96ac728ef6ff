// Package rop provides a railway-oriented Result type and the ErrorInfo
// taxonomy that travels on its error channel.
//
// A producer returns Ok(value) or Err(error) instead of panicking; consumers
// compose steps with Map, MapErr and AndThen, and leave the Result at a
// boundary through Match. Outcome[V] fixes the error channel to ErrorInfo,
// whose closed Category is what boundaries dispatch on.
//
// Common usage:
//
//	func create(name string) rop.Outcome[Item] {
//		if name == "" {
//			return rop.Fail[Item](Errors.NameRequired)
//		}
//		return rop.Success(Item{Name: name})
//	}
//
//	out := rop.AndThen(create(name), persist)
//	status := rop.Match(out,
//		func(Item) int { return 201 },
//		func(e rop.ErrorInfo) int { return statusFor(e.Category) })
//
// See package catalog for registering ErrorInfo values, and chain and solo
// for context-aware composition.
package rop
