// Package openapi derives field definitions from OpenAPI 3 documents so a
// host application can describe its forms once, in schema, and let the
// control layer pick them up.
package openapi
