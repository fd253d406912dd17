// Package testutil contains helper builders and fakes used across tests to
// reduce boilerplate when constructing variable sets, kernels and
// collaborators. They are not intended for production usage.
package testutil
