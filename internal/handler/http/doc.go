// Package http implements the REST transport of the readsync blob server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer-token authentication, request tracing, access
// logging and response compression are handled here before requests reach
// the blob service. The server stores opaque blobs only: it never sees a
// passphrase or a decrypted document.
package http
