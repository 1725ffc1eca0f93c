// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

// CheckHTTPMethod is registered as both the NotFound and the
// MethodNotAllowed handler of the router.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. Here such requests get the same HTTP 404 Not Found as an
// unknown path, so unsupported methods do not reveal which routes exist.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, msgNotFound, http.StatusNotFound)
}
