package models

import "errors"

// ErrDocumentNotFound is returned when a document is not found in the database.
var ErrDocumentNotFound = errors.New("document not found")

// ErrProfileNotFound is returned when no profile exists for an identity id.
var ErrProfileNotFound = errors.New("profile not found")

// ErrSessionNotFound is returned when a session id has no live session.
var ErrSessionNotFound = errors.New("session not found")
