// Package visitor gives each browser a stable anonymous id.
//
// The id keys the per-visitor form state. It lives in an HttpOnly cookie and
// in the request context, where handlers read it with FromContext.
package visitor
