// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/account-vault/internal/crypto"
	"github.com/MKhiriev/account-vault/internal/utils"
	"github.com/MKhiriev/account-vault/models"
)

// Field names accepted by [RecordValidator.Validate].
const (
	FieldEnvelope = "envelope"
	FieldTitle    = "title"
	FieldTags     = "tags"
	FieldMeta     = "meta"
)

// MaxLabelLength bounds title and tags, in characters.
const MaxLabelLength = 255

// RecordID is a record identifier received from a client.
type RecordID string

// RecordValidator validates [models.NewRecord] payloads and [RecordID]s.
type RecordValidator struct{}

// NewRecordValidator constructs a [RecordValidator].
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewRecord:
		return v.validateNewRecord(value, fields...)
	case *models.NewRecord:
		return v.validateNewRecord(*value, fields...)
	case RecordID:
		if !utils.IsUUID(string(value)) {
			return fmt.Errorf("%w: %q", ErrInvalidRecordID, string(value))
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RecordValidator) validateNewRecord(rec models.NewRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEnvelope, FieldTitle, FieldTags, FieldMeta}
	}

	for _, field := range fields {
		switch field {
		case FieldEnvelope:
			// storage holds no key, so only the shape can be checked
			if _, _, _, err := crypto.DecodeEnvelope(rec.Envelope); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
			}
		case FieldTitle:
			if utf8.RuneCountInString(rec.Title) > MaxLabelLength {
				return ErrTitleTooLong
			}
		case FieldTags:
			if utf8.RuneCountInString(rec.Tags) > MaxLabelLength {
				return ErrTagsTooLong
			}
		case FieldMeta:
			for k := range rec.Meta {
				if models.IsSecretField(k) {
					return fmt.Errorf("%w: %q", ErrSecretInMeta, k)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
