// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides account token generation and validation.

# Account Tokens

Tokens use HMAC-SHA256 to create deterministic, verifiable credentials:

	token := auth.GenerateAccountToken(accountID, salt)
	accountID, err := auth.ParseAccountToken(token, salt)

A token is "<account_id>.<signature>", where the signature is the
URL-safe base64 HMAC of the account ID under the server salt. Since
it's deterministic, validation needs no token storage: the server
recomputes the signature and compares in constant time. Rotating the
salt invalidates every issued token.

Clients send the token in the X-Auth-Token header on every
authenticated request.
*/
package auth
