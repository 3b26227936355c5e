// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key used to store the authenticated account name in
// the context. Used together with GetAccountFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AccountCtxKey, "alice")
var AccountCtxKey = contextKey("account")

// GetAccountFromContext retrieves the account name from the context.
//
// Returns the account and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetAccountFromContext(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(AccountCtxKey).(string)
	if !ok || account == "" {
		return "", false
	}
	return account, true
}
