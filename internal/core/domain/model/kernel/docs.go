// Package kernel contains shared value objects used across all domain models.
// It currently provides the ID value object for store-assigned surrogate keys.
package kernel
