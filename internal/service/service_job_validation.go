package service

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

// JobValidationService validates ids and request bodies before delegating
// to the wrapped JobService, so invalid input never reaches the store.
type JobValidationService struct {
	inner     JobService
	validator validators.Validator
}

func NewJobValidationService(validator validators.Validator) JobServiceWrapper {
	return &JobValidationService{
		validator: validator,
	}
}

func (v *JobValidationService) Create(ctx context.Context, owner models.Identity, req models.JobRequest) (models.JobApplication, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.JobApplication{}, err
	}
	return v.inner.Create(ctx, owner, req)
}

func (v *JobValidationService) List(ctx context.Context, owner models.Identity) ([]models.JobApplication, error) {
	return v.inner.List(ctx, owner)
}

func (v *JobValidationService) Get(ctx context.Context, owner models.Identity, id string) (models.JobApplication, error) {
	id, err := checkOwnerAndID(owner, id)
	if err != nil {
		return models.JobApplication{}, err
	}
	return v.inner.Get(ctx, owner, id)
}

func (v *JobValidationService) Update(ctx context.Context, owner models.Identity, id string, req models.JobRequest) (models.JobApplication, error) {
	id, err := checkOwnerAndID(owner, id)
	if err != nil {
		return models.JobApplication{}, err
	}
	if err = v.validator.Validate(ctx, req); err != nil {
		return models.JobApplication{}, err
	}
	return v.inner.Update(ctx, owner, id, req)
}

func (v *JobValidationService) Delete(ctx context.Context, owner models.Identity, id string) error {
	id, err := checkOwnerAndID(owner, id)
	if err != nil {
		return err
	}
	return v.inner.Delete(ctx, owner, id)
}

func (v *JobValidationService) Wrap(wrapper JobService) JobService {
	v.inner = wrapper
	return v
}
