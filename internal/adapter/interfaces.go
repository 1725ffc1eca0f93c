// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the job tracker REST API.
//
// [API] decouples the command-line client from the wire protocol. The
// package ships an HTTP implementation ([NewHTTPAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401). The server's message and field errors are kept
// in the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// API is the set of calls the job tracker server exposes.
type API interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Me returns the profile of the token's owner.
	Me(ctx context.Context) (models.User, error)

	CreateJob(ctx context.Context, req models.JobRequest) (models.JobApplication, error)
	ListJobs(ctx context.Context) ([]models.JobApplication, error)
	GetJob(ctx context.Context, id string) (models.JobApplication, error)

	// UpdateJob replaces every editable field of the job with req.
	UpdateJob(ctx context.Context, id string, req models.JobRequest) (models.JobApplication, error)

	// DeleteJob removes the job and returns the server's confirmation.
	DeleteJob(ctx context.Context, id string) (string, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
