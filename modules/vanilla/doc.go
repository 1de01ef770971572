// Package vanilla serves the demo forms and validates them on the server.
//
// Service renders one page per schema and answers the datastar requests the
// page sends on every input, blur, submit and reset. Each request carries
// the values held in the browser, so the stored state is synced before the
// event is applied and cross-field rules always see the latest password.
// Errors are patched into per-field slots and stay hidden until the field
// has been left once.
//
// A valid submission moves the form to the submitting phase and completes
// after the configured delay. The completion runs detached from the request,
// so a closed tab still finishes it; a reset during the wait drops it.
//
// API exposes the same rules as stateless JSON endpoints:
//
//	POST /api/validate?schema=strict      {"name":"Al",...} -> {"data":{"valid":false,"errors":{...}}}
//	POST /api/validate/age                {"age":"17"}      -> {"data":{"field":"age","kind":"range",...}}
//
// Both need the visitor and i18n middlewares in front of them:
//
//	r.Use(visitor.Middleware(), i18n.Middleware(tr, i18n.MiddlewareConfig{}))
//	r.Mount("/", vanilla.Router(vanilla.RouterOptions{
//		Demos: vanilla.NewService(store, tr),
//		API:   vanilla.NewAPI(tr, log),
//	}))
package vanilla
