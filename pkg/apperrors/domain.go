package apperrors

import (
	"net/http"
)

// --- Reviews ---

var ErrReviewNotFound = New(
	CodeNotFound,
	"reviews",
	"Review not found",
	http.StatusNotFound,
)

// ErrPackageNotReviewable covers both a missing package and one that is not ACTIVE.
var ErrPackageNotReviewable = New(
	CodeNotFound,
	"reviews",
	"Package not found",
	http.StatusNotFound,
)

var ErrInvalidReviewAction = New(
	CodeValidationFailed,
	"reviews",
	"Unsupported review action",
	http.StatusBadRequest,
)

// --- Catalogue ---

var ErrPackageNotFound = New(
	CodeNotFound,
	"packages",
	"Package not found",
	http.StatusNotFound,
)

var ErrDestinationNotFound = New(
	CodeNotFound,
	"destinations",
	"Destination not found",
	http.StatusNotFound,
)

var ErrDestinationInUse = New(
	CodeConflict,
	"destinations",
	"Destination still has packages attached",
	http.StatusConflict,
)

var ErrSlugTaken = New(
	CodeAlreadyExists,
	"catalogue",
	"Slug is already in use",
	http.StatusConflict,
)

var ErrPostNotFound = New(
	CodeNotFound,
	"blog",
	"Post not found",
	http.StatusNotFound,
)

var ErrEnquiryNotFound = New(
	CodeNotFound,
	"enquiries",
	"Enquiry not found",
	http.StatusNotFound,
)

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions is a 401: the admin surface does not distinguish
// "not logged in" from "logged in without the role".
var ErrInsufficientPermissions = New(
	CodeUnauthorized,
	"auth",
	"Unauthorized",
	http.StatusUnauthorized,
)
