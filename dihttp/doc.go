/*
Package dihttp provides HTTP middleware for creating [di.Container] scopes for each request.

Example:

	c, err := di.NewContainer(
		di.WithService(NewService),
		di.WithService(NewRequestService, di.Scoped),
	)
	if err != nil {
		return err
	}

	scopeMiddleware, err := dihttp.NewRequestScopeMiddleware(c)
	if err != nil {
		return err
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		svc := dicontext.MustResolve[*RequestService](r.Context())
		svc.HandleRequest(w, r)
	})

	http.Handle("/", scopeMiddleware(handler))
*/
package dihttp
