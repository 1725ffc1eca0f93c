package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/mock"
	"github.com/MKhiriev/go-job-tracker/models"
)

const testJobID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a60"

func newTestCommander(t *testing.T) (*commander, *mock.MockAPI, *bytes.Buffer) {
	t.Helper()
	api := mock.NewMockAPI(gomock.NewController(t))
	out := &bytes.Buffer{}
	return newCommander(api, out, models.NewAppBuildInfo("v0.1.0", "", "")), api, out
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"dance"}},
		{name: "jobs without subcommand", args: []string{"jobs"}},
		{name: "unknown jobs subcommand", args: []string{"jobs", "archive"}},
		{name: "get without id", args: []string{"jobs", "get"}},
		{name: "delete without id", args: []string{"jobs", "delete"}},
		{name: "bad date", args: []string{"jobs", "create", "-company", "Acme", "-date", "June 1st"}},
		{name: "unknown flag", args: []string{"login", "-user", "ann"}},
		{name: "stray argument", args: []string{"login", "-email", "a@b.c", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, out := newTestCommander(t)

			err := c.run(context.Background(), tt.args)

			require.ErrorIs(t, err, errUsage)
			assert.Zero(t, out.Len())
		})
	}
}

func TestRun_Register(t *testing.T) {
	c, api, out := newTestCommander(t)
	api.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Name: "Ann", Email: "ann@example.com", Password: "secret", ConfirmPassword: "secret",
	}).Return("tkn", nil)

	err := c.run(context.Background(), []string{"register", "-name", "Ann", "-email", "ann@example.com", "-password", "secret"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"tkn"}`, out.String())
}

func TestRun_LoginError(t *testing.T) {
	c, api, out := newTestCommander(t)
	api.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "nope"}).
		Return("", adapter.ErrUnauthorized)

	err := c.run(context.Background(), []string{"login", "-email", "ann@example.com", "-password", "nope"})

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Zero(t, out.Len())
}

func TestRun_Me(t *testing.T) {
	c, api, out := newTestCommander(t)
	api.EXPECT().Me(gomock.Any()).Return(models.User{ID: "u1", Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"}, nil)

	require.NoError(t, c.run(context.Background(), []string{"me"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "u1", got["id"])
	assert.NotContains(t, got, "passwordHash")
}

func TestRun_Version(t *testing.T) {
	c, api, out := newTestCommander(t)
	api.EXPECT().Version(gomock.Any()).Return("v1.2.3", nil)

	require.NoError(t, c.run(context.Background(), []string{"version"}))
	assert.JSONEq(t, `{"client":{"version":"v0.1.0","date":"N/A","commit":"N/A"},"server":"v1.2.3"}`, out.String())
}

func TestRun_Jobs(t *testing.T) {
	date, err := models.ParseDate("2025-06-01")
	require.NoError(t, err)

	t.Run("list", func(t *testing.T) {
		c, api, out := newTestCommander(t)
		api.EXPECT().ListJobs(gomock.Any()).Return([]models.JobApplication{}, nil)

		require.NoError(t, c.run(context.Background(), []string{"jobs", "list"}))
		assert.JSONEq(t, `[]`, out.String())
	})

	t.Run("create", func(t *testing.T) {
		c, api, out := newTestCommander(t)
		want := models.JobRequest{CompanyName: "Acme", JobTitle: "Engineer", ApplicationDate: date}
		api.EXPECT().CreateJob(gomock.Any(), want).Return(models.JobApplication{ID: testJobID}, nil)

		err := c.run(context.Background(), []string{"jobs", "create", "-company", "Acme", "-title", "Engineer", "-date", "2025-06-01"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), testJobID)
	})

	t.Run("update", func(t *testing.T) {
		c, api, _ := newTestCommander(t)
		want := models.JobRequest{CompanyName: "Acme", JobTitle: "Lead", ApplicationDate: date, Status: models.StatusOffer}
		api.EXPECT().UpdateJob(gomock.Any(), testJobID, want).Return(models.JobApplication{ID: testJobID}, nil)

		err := c.run(context.Background(), []string{
			"jobs", "update", testJobID, "-company", "Acme", "-title", "Lead", "-date", "2025-06-01", "-status", "Offer",
		})

		require.NoError(t, err)
	})

	t.Run("get not found", func(t *testing.T) {
		c, api, _ := newTestCommander(t)
		api.EXPECT().GetJob(gomock.Any(), testJobID).Return(models.JobApplication{}, adapter.ErrNotFound)

		err := c.run(context.Background(), []string{"jobs", "get", testJobID})

		assert.ErrorIs(t, err, adapter.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		c, api, out := newTestCommander(t)
		api.EXPECT().DeleteJob(gomock.Any(), testJobID).Return("Job deleted successfully", nil)

		require.NoError(t, c.run(context.Background(), []string{"jobs", "delete", testJobID}))
		assert.JSONEq(t, `{"message":"Job deleted successfully"}`, out.String())
	})
}
