package vanilla

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects the parts of the module to mount.
type RouterOptions struct {
	Demos Mountable // pages and live validation, mounted at /
	API   Mountable // JSON validation, mounted at /api
}

// Router mounts the configured services.
//
//	svc := vanilla.NewService(store, tr, vanilla.WithLogger(log))
//	r.Mount("/", vanilla.Router(vanilla.RouterOptions{
//		Demos: svc,
//		API:   vanilla.NewAPI(tr, log),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.API != nil {
		r.Mount("/api", opts.API.Handle())
	}
	if opts.Demos != nil {
		r.Mount("/", opts.Demos.Handle())
	}
	return r
}
