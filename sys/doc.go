// Package sys contains the raw flat-API bindings to the Steamworks native
// library. Function names mirror the C interface verbatim.
//
// Nothing in this package is safe to call before Load has returned nil, and
// nothing here validates its arguments. Use the root steamworks package
// unless you need direct access to the flat API.
package sys
