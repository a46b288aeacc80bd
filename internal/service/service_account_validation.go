// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/account-vault/internal/validators"
	"github.com/MKhiriev/account-vault/models"
)

// AccountValidationService rejects malformed input before it reaches the
// wrapped [AccountService].
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func newAccountValidationServiceWith(v validators.Validator) *AccountValidationService {
	return &AccountValidationService{validator: v}
}

func (v *AccountValidationService) Create(ctx context.Context, rec models.NewRecord) (models.Record, error) {
	if err := v.validator.Validate(ctx, rec); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, rec)
}

func (v *AccountValidationService) List(ctx context.Context) ([]models.Record, error) {
	return v.inner.List(ctx)
}

func (v *AccountValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, validators.RecordID(id)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecordID, err)
	}

	return v.inner.Delete(ctx, id)
}

func (v *AccountValidationService) Ping(ctx context.Context) error {
	return v.inner.Ping(ctx)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}
