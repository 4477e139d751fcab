// Package utils provides small helpers shared across the application:
// generic slice transforms, randomized pauses, content-type inspection
// and User-Agent providers for the HTTP transport chain.
package utils
