package dihttp

import (
	"github.com/sectrean/di-builder"
	"github.com/sectrean/di-builder/internal/errors"
)

// RequestScopeMiddlewareOption is used to configure [NewRequestScopeMiddleware].
type RequestScopeMiddlewareOption interface {
	applyMiddleware(*middlewareConfig) error
}

type middlewareOption func(*middlewareConfig) error

func (o middlewareOption) applyMiddleware(c *middlewareConfig) error {
	return o(c)
}

// WithContainerOptions sets the options used when calling [di.Container.NewScope] for each request.
func WithContainerOptions(opts ...di.ContainerOption) RequestScopeMiddlewareOption {
	return middlewareOption(func(c *middlewareConfig) error {
		c.opts = append(c.opts, opts...)
		return nil
	})
}

// WithNewScopeErrorHandler sets the handler for errors creating a new request scope.
func WithNewScopeErrorHandler(h NewScopeErrorHandler) RequestScopeMiddlewareOption {
	return middlewareOption(func(c *middlewareConfig) error {
		if h == nil {
			return errors.New("with new scope error handler: h is nil")
		}
		c.newScopeHandler = h
		return nil
	})
}

// WithScopeCloseErrorHandler sets the handler for errors closing the request scope.
func WithScopeCloseErrorHandler(h ScopeCloseErrorHandler) RequestScopeMiddlewareOption {
	return middlewareOption(func(c *middlewareConfig) error {
		if h == nil {
			return errors.New("with scope close error handler: h is nil")
		}
		c.closeHandler = h
		return nil
	})
}
