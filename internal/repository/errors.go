// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios, e.g. a registration
// hitting a unique constraint versus a room lookup that found nothing.
package repository

import "errors"

// ErrUsernameExists is returned when a registration collides with an
// existing username.  Handlers translate this into an HTTP 400 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when a registration collides with an existing
// email address.  Handlers translate this into an HTTP 400 response.
var ErrEmailExists = errors.New("email already exists")

// ErrRoomNotFound is returned when a room does not exist or belongs to a
// different user.  Handlers translate this into an HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")

// ErrDeviceNotFound is returned when a device does not exist or belongs to
// a different user.  Handlers translate this into an HTTP 404 response.
var ErrDeviceNotFound = errors.New("device not found")

// ErrUserNotFound is returned when a user row cannot be loaded.
var ErrUserNotFound = errors.New("user not found")
