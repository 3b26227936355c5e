// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// hideMethodNotAllowed is registered as the router's MethodNotAllowed
// handler. It answers 404 instead of chi's default 405 so that unsupported
// methods do not reveal which routes exist.
func hideMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
