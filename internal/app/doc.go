// Package app wires the application together: the shared HTTP session with
// its transport chain, the token exchange client, the token cache, and the
// login service, then runs the authentication flow and prints the result.
package app
