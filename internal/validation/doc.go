// Package validation holds the input rules shared by the client forms and the
// server's credential checks.
//
// Every validator is a pure function returning a Result; none of them panic or
// return errors. ValidateForm composes them into one FormResult for a whole
// form, short-circuiting per field on a failed Required check.
package validation
