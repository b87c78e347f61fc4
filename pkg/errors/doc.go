// Package errors provides structured errors with stable codes for the
// role-admin service.
//
// Store implementations attach a code to the failures they report (for
// example ALREADY_EXISTS on a duplicate role name) so that workflow code
// can map them to user-facing error lists without string matching.
//
//	err := errors.New(errors.ErrCodeAlreadyExists, "role name already exists").
//		WithDetail("name", name)
//
//	if errors.HasCode(err, errors.ErrCodeAlreadyExists) {
//		// surface to the form
//	}
package errors
