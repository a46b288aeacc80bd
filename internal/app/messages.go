// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing wording of the client.
//
// All Msg* constants are shown in the terminal UI; [UserMessage] maps the
// sentinel errors of the lower layers onto them so every screen reports
// failures the same way.
package app

import (
	"errors"
	"strings"

	"github.com/MKhiriev/account-vault/internal/adapter"
	"github.com/MKhiriev/account-vault/internal/crypto"
	"github.com/MKhiriev/account-vault/internal/disclosure"
	"github.com/MKhiriev/account-vault/internal/session"
)

const (
	MsgLocked             = "Хранилище заблокировано, введите мастер-пароль"
	MsgEmptySecret        = "Мастер-пароль не может быть пустым"
	MsgAuthentication     = "Не удалось расшифровать запись: неверный мастер-пароль или данные повреждены"
	MsgMalformedEnvelope  = "Запись повреждена"
	MsgDeserialization    = "Не удалось прочитать расшифрованную запись"
	MsgKeyDerivation      = "Не удалось получить ключ шифрования"
	MsgClipboard          = "Не удалось записать в буфер обмена"
	MsgNotFound           = "Запись не найдена"
	MsgRejected           = "Сервер отклонил запрос"
	MsgServerError        = "Внутренняя ошибка сервера"
	MsgServerUnavailable  = "Отсутствует сеть или Сервер недоступен"
	MsgStorageUnavailable = "Хранилище на сервере недоступно"
)

var errorMessages = []struct {
	target  error
	message string
}{
	{session.ErrNotUnlocked, MsgLocked},
	{session.ErrEmptySecret, MsgEmptySecret},
	{crypto.ErrAuthentication, MsgAuthentication},
	{crypto.ErrMalformedEnvelope, MsgMalformedEnvelope},
	{crypto.ErrDeserialization, MsgDeserialization},
	{crypto.ErrKeyDerivation, MsgKeyDerivation},
	{disclosure.ErrSinkWrite, MsgClipboard},
	{adapter.ErrNotFound, MsgNotFound},
	{adapter.ErrBadRequest, MsgRejected},
	{adapter.ErrConflict, MsgRejected},
	{adapter.ErrInternalServerError, MsgServerError},
	{adapter.ErrBadGateway, MsgServerUnavailable},
	{adapter.ErrStorageUnavailable, MsgStorageUnavailable},
}

// UserMessage returns the text shown to the user for err. Unknown errors
// are shown as is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	if isNetworkError(err) {
		return MsgServerUnavailable
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
