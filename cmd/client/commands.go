package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/models"
)

const usage = `usage: job-tracker [-s address] [-t timeout] [-token token] [-c config.json] <command>

commands:
  version
  register -name NAME -email EMAIL -password PASSWORD [-confirm PASSWORD]
  login -email EMAIL -password PASSWORD
  me
  jobs list
  jobs get ID
  jobs create -company NAME -title TITLE -date YYYY-MM-DD [-status STATUS]
  jobs update ID -company NAME -title TITLE -date YYYY-MM-DD [-status STATUS]
  jobs delete ID`

var errUsage = errors.New("invalid usage")

// commander runs one CLI command against the API and prints the result as
// JSON on out.
type commander struct {
	api   adapter.API
	out   io.Writer
	build models.AppBuildInfo
}

func newCommander(api adapter.API, out io.Writer, build models.AppBuildInfo) *commander {
	return &commander{api: api, out: out, build: build}
}

func (c *commander) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "version":
		return c.version(ctx)
	case "register":
		return c.register(ctx, args[1:])
	case "login":
		return c.login(ctx, args[1:])
	case "me":
		user, err := c.api.Me(ctx)
		if err != nil {
			return err
		}
		return c.print(user)
	case "jobs":
		return c.jobs(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func (c *commander) version(ctx context.Context) error {
	serverVersion, err := c.api.Version(ctx)
	if err != nil {
		return err
	}
	return c.print(map[string]any{
		"client": c.build,
		"server": serverVersion,
	})
}

func (c *commander) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest

	fs := newFlagSet("register")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.ConfirmPassword, "confirm", "", "password confirmation (defaults to -password)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if req.ConfirmPassword == "" {
		req.ConfirmPassword = req.Password
	}

	token, err := c.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return c.print(models.TokenResponse{Token: token})
}

func (c *commander) login(ctx context.Context, args []string) error {
	var req models.LoginRequest

	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	token, err := c.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return c.print(models.TokenResponse{Token: token})
}

func (c *commander) jobs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: jobs needs a subcommand", errUsage)
	}

	switch args[0] {
	case "list":
		jobs, err := c.api.ListJobs(ctx)
		if err != nil {
			return err
		}
		return c.print(jobs)
	case "get":
		id, err := jobID(args[1:])
		if err != nil {
			return err
		}
		job, err := c.api.GetJob(ctx, id)
		if err != nil {
			return err
		}
		return c.print(job)
	case "create":
		req, err := jobRequest(args[1:])
		if err != nil {
			return err
		}
		job, err := c.api.CreateJob(ctx, req)
		if err != nil {
			return err
		}
		return c.print(job)
	case "update":
		id, err := jobID(args[1:])
		if err != nil {
			return err
		}
		req, err := jobRequest(args[2:])
		if err != nil {
			return err
		}
		job, err := c.api.UpdateJob(ctx, id, req)
		if err != nil {
			return err
		}
		return c.print(job)
	case "delete":
		id, err := jobID(args[1:])
		if err != nil {
			return err
		}
		msg, err := c.api.DeleteJob(ctx, id)
		if err != nil {
			return err
		}
		return c.print(models.MessageResponse{Message: msg})
	default:
		return fmt.Errorf("%w: unknown jobs subcommand %q", errUsage, args[0])
	}
}

func (c *commander) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func jobID(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: job id is required", errUsage)
	}
	return args[0], nil
}

// jobRequest parses the job flags. The date is checked for format only; the
// server owns every other rule.
func jobRequest(args []string) (models.JobRequest, error) {
	var req models.JobRequest
	var date, status string

	fs := newFlagSet("job")
	fs.StringVar(&req.CompanyName, "company", "", "company name")
	fs.StringVar(&req.JobTitle, "title", "", "job title")
	fs.StringVar(&date, "date", "", "application date, YYYY-MM-DD")
	fs.StringVar(&status, "status", "", "Applied, Interview, Offer or Rejected")
	if err := parseFlags(fs, args); err != nil {
		return models.JobRequest{}, err
	}

	if date != "" {
		d, err := models.ParseDate(date)
		if err != nil {
			return models.JobRequest{}, fmt.Errorf("%w: -date: %w", errUsage, err)
		}
		req.ApplicationDate = d
	}
	req.Status = models.JobStatus(status)

	return req, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %w", errUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected argument %q", errUsage, fs.Name(), fs.Arg(0))
	}
	return nil
}
