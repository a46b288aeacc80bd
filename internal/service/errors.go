// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidRecordID       = errors.New("invalid record id")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilDependency         = errors.New("required dependency is nil")
)
