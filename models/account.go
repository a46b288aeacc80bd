// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Account is the plaintext form of a vault entry before encryption. It is
// serialized to JSON and sealed into an [Envelope]; only Title and Tags are
// additionally sent to storage in the clear.
type Account struct {
	Title    string `json:"title,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Note     string `json:"note,omitempty"`
	Tags     string `json:"tags,omitempty"`
	TOTP     string `json:"totp,omitempty"`
}

// Field names accepted by the disclosure mechanism. They match the JSON keys
// of [Account].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTOTP     = "totp"
	FieldPhone    = "phone"
	FieldNote     = "note"
)

// RevealableFields lists the decrypted fields the client may copy to the
// clipboard, in the order the list screen binds them to hotkeys.
var RevealableFields = []string{
	FieldUsername,
	FieldEmail,
	FieldPassword,
	FieldTOTP,
	FieldPhone,
	FieldNote,
}

// IsSecretField reports whether name refers to a field that only ever
// travels inside an encrypted envelope. Names are compared ignoring case and
// surrounding space; a name derived from a secret field ("email_recovery",
// "password-hint") counts as secret too.
func IsSecretField(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range RevealableFields {
		if name == f || strings.HasPrefix(name, f+"_") || strings.HasPrefix(name, f+"-") {
			return true
		}
	}
	return false
}
