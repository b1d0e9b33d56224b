package storage

import "errors"

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when a record with the same key already exists.
var ErrAlreadyExists = errors.New("record already exists")

// ErrConditionFailed is returned when a conditional write lost to a concurrent
// writer, i.e. the record was no longer in the expected state.
var ErrConditionFailed = errors.New("record not in expected state")

// ErrWashCodeTaken is returned when a wash code is already held by a live request.
var ErrWashCodeTaken = errors.New("wash code already in use")

// ErrAlreadyReviewed is returned when a wash request already carries a rating
// or is no longer eligible for one.
var ErrAlreadyReviewed = errors.New("wash request already reviewed")
