package services

import (
	"errors"
	"testing"

	"travel_backend/internal/models"
	"travel_backend/internal/services/dto"
	"travel_backend/internal/testutil"
	"travel_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEnquiry_StoresAndNotifies(t *testing.T) {
	env := newTestEnv(t, nil)
	pkg := testutil.CreatePackage(t, env.db, "Goa Beach Paradise", models.ListingStatusActive)

	resp, err := env.enquiries.CreateEnquiry(env.db, &dto.CreateEnquiryRequest{
		Type:       "booking",
		PackageID:  &pkg.ID,
		Name:       "Ravi",
		Email:      "  Ravi@Example.COM ",
		TravelDate: "2026-12-20",
		Message:    "Two adults, sea view please.",
	})
	require.NoError(t, err)

	enquiry := resp.Enquiry
	assert.Equal(t, EnquiryReceivedMessage, resp.Message)
	assert.Equal(t, models.EnquiryTypeBooking, enquiry.Type)
	assert.Equal(t, models.EnquiryStatusNew, enquiry.Status)
	assert.Equal(t, "ravi@example.com", enquiry.Email)
	assert.Equal(t, 1, enquiry.Travelers)
	require.NotNil(t, enquiry.TravelDate)
	assert.Equal(t, "2026-12-20", enquiry.TravelDate.Format("2006-01-02"))

	sent := env.mail.Sent()
	require.Len(t, sent, 2)

	desk := sent[0]
	assert.Equal(t, []string{"desk@example.com"}, desk.To)
	assert.Equal(t, "ravi@example.com", desk.ReplyTo)
	assert.Equal(t, "New booking from Ravi", desk.Subject)
	assert.Contains(t, desk.HTMLBody, "Goa Beach Paradise")
	assert.Contains(t, desk.HTMLBody, "https://travel.example.com/admin/enquiries/"+enquiry.ID)

	receipt := sent[1]
	assert.Equal(t, []string{"ravi@example.com"}, receipt.To)
	assert.Contains(t, receipt.HTMLBody, "Ravi")
}

func TestCreateEnquiry_GeneralEnquiryWithoutPackage(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := env.enquiries.CreateEnquiry(env.db, &dto.CreateEnquiryRequest{
		Name:      "Meera",
		Email:     "meera@example.com",
		Travelers: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryTypeEnquiry, resp.Enquiry.Type)
	assert.Nil(t, resp.Enquiry.PackageID)
	assert.Equal(t, 4, resp.Enquiry.Travelers)
}

func TestCreateEnquiry_RejectsUnbookablePackage(t *testing.T) {
	env := newTestEnv(t, nil)
	inactive := testutil.CreatePackage(t, env.db, "Retired", models.ListingStatusInactive)
	missing := "nope"

	for _, id := range []*string{&inactive.ID, &missing} {
		_, err := env.enquiries.CreateEnquiry(env.db, &dto.CreateEnquiryRequest{
			PackageID: id,
			Name:      "Ravi",
			Email:     "ravi@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrPackageNotFound)
	}

	var count int64
	require.NoError(t, env.db.Model(&models.Enquiry{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, env.mail.Sent())
}

func TestCreateEnquiry_MailFailureDoesNotFailRequest(t *testing.T) {
	env := newTestEnv(t, nil)
	env.mail.Err = errors.New("smtp: connection refused")

	resp, err := env.enquiries.CreateEnquiry(env.db, &dto.CreateEnquiryRequest{Name: "Ravi", Email: "ravi@example.com"})
	require.NoError(t, err)

	stored, err := env.enquiries.GetEnquiry(env.db, resp.Enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", stored.Name)
}

func TestUpdateEnquiryStatus(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := env.enquiries.CreateEnquiry(env.db, &dto.CreateEnquiryRequest{Name: "Ravi", Email: "ravi@example.com"})
	require.NoError(t, err)

	updated, err := env.enquiries.UpdateEnquiryStatus(env.db, resp.Enquiry.ID, &dto.UpdateEnquiryRequest{Status: "contacted"})
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusContacted, updated.Status)

	_, err = env.enquiries.UpdateEnquiryStatus(env.db, resp.Enquiry.ID, &dto.UpdateEnquiryRequest{Status: "LOST"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)

	_, err = env.enquiries.UpdateEnquiryStatus(env.db, "missing", &dto.UpdateEnquiryRequest{Status: "CONFIRMED"})
	assert.ErrorIs(t, err, apperrors.ErrEnquiryNotFound)

	list, err := env.enquiries.ListEnquiries(env.db, &dto.EnquiryListQuery{Status: "CONTACTED"})
	require.NoError(t, err)
	require.Len(t, list.Enquiries, 1)
	assert.Equal(t, resp.Enquiry.ID, list.Enquiries[0].ID)
}
