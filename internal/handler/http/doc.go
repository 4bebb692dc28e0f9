// Package http implements the HTTP transport layer of the address book.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Tracing, access logging, CORS and the bearer-token gate are handled
// here before requests are delegated to the service layer.
package http
