// Package api is the console's single client for the admin REST backend.
//
// Every page goes through Client: it resolves the auth mode (static API key
// or persisted bearer token), builds request URLs from the configured base,
// encodes JSON bodies and normalizes failures into *Error values whose
// message is safe to show an operator. Typed methods wrap each backend
// resource and decode its payload into the structs declared alongside them.
package api
