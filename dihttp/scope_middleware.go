package dihttp

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/sectrean/di-builder"
	"github.com/sectrean/di-builder/dicontext"
	"github.com/sectrean/di-builder/internal/errors"
)

// NewRequestScopeMiddleware creates middleware that creates a new child [di.Container] scope
// for each request. The scope is closed after the request has been processed.
//
// The current [*http.Request] is registered with the scope. It can be used as a dependency for
// scoped services.
//
// The scope is stored on the request context and can be accessed using [dicontext.Scope],
// [dicontext.Resolve], [dicontext.MustResolve], or [dicontext.NewBuilder].
//
// Available options:
//   - [WithContainerOptions] sets the options used when creating each request scope.
//   - [WithNewScopeErrorHandler] sets the handler for errors creating a new scope.
//   - [WithScopeCloseErrorHandler] sets the handler for errors closing the scope.
func NewRequestScopeMiddleware(
	parent *di.Container,
	opts ...RequestScopeMiddlewareOption,
) (func(http.Handler) http.Handler, error) {
	if parent == nil {
		return nil, errors.New("new request scope middleware: parent is nil")
	}

	cfg := &middlewareConfig{
		parent:          parent,
		newScopeHandler: defaultNewScopeErrorHandler,
		closeHandler:    defaultScopeCloseErrorHandler,
	}

	var errs errors.MultiError
	for _, opt := range opts {
		errs = errs.Append(opt.applyMiddleware(cfg))
	}
	if err := errs.Wrap("new request scope middleware"); err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return &requestScopeHandler{
			cfg:  cfg,
			next: next,
		}
	}, nil
}

// NewScopeErrorHandler writes an error response when the request scope cannot be created.
//
// The default handler logs the error with [slog.ErrorContext] and writes a
// 500 Internal Server Error response.
type NewScopeErrorHandler = func(w http.ResponseWriter, r *http.Request, err error)

func defaultNewScopeErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error creating HTTP request scope", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// ScopeCloseErrorHandler handles errors closing the request scope after the request
// has completed.
//
// The default handler logs the error with [slog.ErrorContext].
type ScopeCloseErrorHandler = func(r *http.Request, err error)

func defaultScopeCloseErrorHandler(r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error closing HTTP request scope", "error", err)
}

type middlewareConfig struct {
	parent          *di.Container
	opts            []di.ContainerOption
	newScopeHandler NewScopeErrorHandler
	closeHandler    ScopeCloseErrorHandler
}

type requestScopeHandler struct {
	cfg  *middlewareConfig
	next http.Handler
}

func (h *requestScopeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The append must not write to the shared backing array.
	opts := append(slices.Clip(h.cfg.opts), di.WithService(r))

	scope, err := h.cfg.parent.NewScope(opts...)
	if err != nil {
		h.cfg.newScopeHandler(w, r, err)
		return
	}

	ctx := dicontext.WithScope(r.Context(), scope)
	r = r.WithContext(ctx)

	defer func() {
		if err := scope.Close(ctx); err != nil {
			h.cfg.closeHandler(r, err)
		}
	}()

	h.next.ServeHTTP(w, r)
}
