// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid token format")

// SignAccountID computes the HMAC signature for an account ID.
// This is deterministic and verifiable against the server salt.
func SignAccountID(accountID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(accountID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// GenerateAccountToken creates the bearer token handed to a client on
// account creation: "<account_id>.<signature>".
func GenerateAccountToken(accountID, salt string) string {
	return accountID + "." + SignAccountID(accountID, salt)
}

// ParseAccountToken validates a token and returns the account ID it
// identifies. The signature check is constant-time.
func ParseAccountToken(token, salt string) (string, error) {
	dot := strings.LastIndexByte(token, '.')
	if dot <= 0 || dot == len(token)-1 {
		return "", ErrInvalidToken
	}

	accountID := token[:dot]
	sig := token[dot+1:]

	expected := SignAccountID(accountID, salt)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidToken
	}

	return accountID, nil
}
