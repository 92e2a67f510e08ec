package models

import "strings"

type ReviewStatus string
type ListingStatus string
type Region string
type PostStatus string
type EnquiryType string
type EnquiryStatus string
type UserRole string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"

	ListingStatusActive   ListingStatus = "ACTIVE"
	ListingStatusInactive ListingStatus = "INACTIVE"
	ListingStatusDraft    ListingStatus = "DRAFT"

	RegionIndia Region = "INDIA"
	RegionWorld Region = "WORLD"

	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"

	EnquiryTypeEnquiry EnquiryType = "ENQUIRY"
	EnquiryTypeBooking EnquiryType = "BOOKING"

	EnquiryStatusNew       EnquiryStatus = "NEW"
	EnquiryStatusContacted EnquiryStatus = "CONTACTED"
	EnquiryStatusConfirmed EnquiryStatus = "CONFIRMED"
	EnquiryStatusCancelled EnquiryStatus = "CANCELLED"

	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleEditor UserRole = "EDITOR"
)

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// ParseReviewStatus accepts any casing ("approved", "Approved", "APPROVED").
func ParseReviewStatus(s string) (ReviewStatus, bool) {
	st := ReviewStatus(normalize(s))
	return st, st.Valid()
}

func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusActive, ListingStatusInactive, ListingStatusDraft:
		return true
	}
	return false
}

func ParseListingStatus(s string) (ListingStatus, bool) {
	st := ListingStatus(normalize(s))
	return st, st.Valid()
}

func (r Region) Valid() bool {
	return r == RegionIndia || r == RegionWorld
}

func ParseRegion(s string) (Region, bool) {
	r := Region(normalize(s))
	return r, r.Valid()
}

func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

func ParsePostStatus(s string) (PostStatus, bool) {
	st := PostStatus(normalize(s))
	return st, st.Valid()
}

func (t EnquiryType) Valid() bool {
	return t == EnquiryTypeEnquiry || t == EnquiryTypeBooking
}

func ParseEnquiryType(s string) (EnquiryType, bool) {
	t := EnquiryType(normalize(s))
	return t, t.Valid()
}

func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusContacted, EnquiryStatusConfirmed, EnquiryStatusCancelled:
		return true
	}
	return false
}

func ParseEnquiryStatus(s string) (EnquiryStatus, bool) {
	st := EnquiryStatus(normalize(s))
	return st, st.Valid()
}

func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleEditor
}

func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(normalize(s))
	return r, r.Valid()
}
