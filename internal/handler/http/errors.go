// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidJSON is returned by decodeJSON when the request body is not a
// JSON document of the expected shape.
var errInvalidJSON = errors.New("invalid JSON was passed")

// errBodyTooLarge is returned by decodeJSON when the body exceeds maxBodyBytes.
var errBodyTooLarge = errors.New("request body too large")

// Response messages. The browser client displays them as they are.
const (
	msgNoToken            = "Access denied. No token provided."
	msgInvalidTokenFormat = "Access denied. Invalid token format."
	msgTokenExpired       = "Token expired. Please log in again."
	msgInvalidToken       = "Invalid token."
	msgUnknownTokenUser   = "User not found. Token invalid."

	msgInvalidJSON         = "Invalid JSON was passed"
	msgInvalidGzip         = "Invalid gzip data"
	msgBodyTooLarge        = "Request body too large"
	msgValidationFailed    = "Validation failed"
	msgPasswordsDoNotMatch = "Passwords do not match"
	msgUserAlreadyExists   = "User already exists"
	msgInvalidCredentials  = "Invalid credentials"
	msgUserNotFound        = "User not found"
	msgInvalidJobID        = "Invalid job ID format"
	msgJobNotFound         = "Job not found"
	msgJobDeleted          = "Job deleted successfully"
	msgNotFound            = "Not found"
	msgInternalError       = "Internal server error"
)
