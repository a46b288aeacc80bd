// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEnvelope = errors.New("invalid envelope")
	ErrInvalidRecordID = errors.New("invalid record id")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrTagsTooLong     = errors.New("tags are too long")
	ErrSecretInMeta    = errors.New("meta must not carry credential fields")
)
