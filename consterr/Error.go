// Package consterr makes it possible to declare error values with the `const` keyword.
package consterr

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	TL;DR:
//	  const ErrSomething consterr.Error = "something is an error"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }
