// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the mRC structured error handling
//              system including error codes, severities, and contextual
//              error construction.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14

/*
Package error provides structured error handling for mRC.

Errors carry a code, a severity, a timestamp, an optional operation and
context, and a details map for diagnostics. They remain compatible with
Go's standard error interface and support wrapping and unwrapping.

Typical usage:

	err := mrcerror.New("command not found").
		WithCode(mrcerror.CodeNotFound).
		WithOperation("lookup").
		WithDetail("token", token)

The catalog codes map directly onto the catalog lifecycle: DUPLICATE_ENTRY
and AMBIGUOUS_ALIAS are load-time failures that leave no usable registry,
NOT_FOUND is a recoverable lookup failure where the caller decides the
fallback (for example nearest-match suggestions).
*/
package error
