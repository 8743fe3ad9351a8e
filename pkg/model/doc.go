// Package model exposes the field-definition and document types shared by
// the control layer. The concrete types live in internal/model; this package
// re-exports them so external callers depend on a stable import path.
package model
