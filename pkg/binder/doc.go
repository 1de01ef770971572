// Package binder decodes HTTP requests into structs.
//
// Each binder is a Func reading one source: JSON bodies, form posts, the
// query string, route parameters or datastar signals. Struct tags pick the
// source name:
//
//	type request struct {
//	    Demo   string `path:"demo"`
//	    Schema string `query:"schema"`
//	    Name   string `form:"name" json:"name"`
//	}
//
// Values are bound as sent. Length limits belong to validation; only the
// request body size is capped.
package binder
