package http

// Router maps (URI, method) pairs to handlers. Routes are registered once
// before serving begins; the table is read-only afterwards and safe for
// concurrent lookups.
type Router struct {
	routes map[string]map[string]Handler
}

func NewRouter() *Router {
	return &Router{
		routes: make(map[string]map[string]Handler),
	}
}

// Insert registers handler under the (uri, method) pair. Registering the
// same pair twice silently overwrites the previous handler.
func (router *Router) Insert(uri string, method string, handler Handler) {
	methods, found := router.routes[uri]
	if !found {
		methods = make(map[string]Handler)
		router.routes[uri] = methods
	}

	methods[method] = handler
}

// Any registers the same handler once per method under uri. Duplicate
// methods collapse; an empty method set registers nothing, leaving the URI
// indistinguishable from an unregistered one.
func (router *Router) Any(uri string, methods []string, handler Handler) {
	for _, method := range methods {
		router.Insert(uri, method, handler)
	}
}

func (router *Router) GET(uri string, handler Handler) {
	router.Insert(uri, MethodGet, handler)
}

func (router *Router) HEAD(uri string, handler Handler) {
	router.Insert(uri, MethodHead, handler)
}

func (router *Router) POST(uri string, handler Handler) {
	router.Insert(uri, MethodPost, handler)
}

func (router *Router) PUT(uri string, handler Handler) {
	router.Insert(uri, MethodPut, handler)
}

func (router *Router) PATCH(uri string, handler Handler) {
	router.Insert(uri, MethodPatch, handler)
}

func (router *Router) DELETE(uri string, handler Handler) {
	router.Insert(uri, MethodDelete, handler)
}

func (router *Router) OPTIONS(uri string, handler Handler) {
	router.Insert(uri, MethodOptions, handler)
}

// Resolve looks up the handler for (uri, method). The two failure cases are
// distinct: a URI registered under some other method fails with 405, a URI
// not registered at all fails with 404.
func (router *Router) Resolve(uri string, method string) (Handler, error) {
	methods, found := router.routes[uri]
	if !found {
		return nil, CannedStatus(StatusNotFound)
	}

	handler, found := methods[method]
	if !found {
		return nil, CannedStatus(StatusMethodNotAllowed)
	}

	return handler, nil
}
