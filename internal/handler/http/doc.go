// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the web
// surface. Cross-cutting concerns such as session authentication, request
// tracing, and access logging are handled in this package before requests
// are delegated to the service layer.
//
// Read endpoints answer JSON. Mutating endpoints follow the
// POST-redirect-GET pattern: they answer 303 See Other and communicate
// outcomes through one-shot session flash messages, which the task listing
// returns to the client.
package http
