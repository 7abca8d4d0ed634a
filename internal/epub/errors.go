package epub

import "errors"

// Sentinel errors returned by the epub package.
var (
	// ErrDRMProtected indicates the container is encrypted with a DRM scheme
	// (Adobe ADEPT, Apple FairPlay, Readium LCP) and its items cannot be read.
	ErrDRMProtected = errors.New("epub: file is DRM protected")

	// ErrInvalidEPub indicates the archive is not a usable ePub container,
	// for example when no OPF package document can be located.
	ErrInvalidEPub = errors.New("epub: invalid ePub file")

	// ErrInvalidItem indicates an Item handle has no associated Book.
	ErrInvalidItem = errors.New("epub: invalid item handle")

	// ErrFileNotFound indicates a manifest entry points at a path that does
	// not exist in the archive.
	ErrFileNotFound = errors.New("epub: file not found in archive")
)
