package integration_test

import (
	"net/http"
	"testing"

	"travel_backend/internal/models"
	"travel_backend/internal/testutil"
	"travel_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnquiry_SubmitAndManage(t *testing.T) {
	ts := helpers.NewTestServer(t)
	admin := helpers.LoginAdmin(t, ts)
	pkg := testutil.CreatePackage(t, ts.DB, "Goa Beach Paradise", models.ListingStatusActive)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/enquiries", "", map[string]interface{}{
		"type":       "BOOKING",
		"packageId":  pkg.ID,
		"name":       "Ravi",
		"email":      "ravi@example.com",
		"travelDate": "2026-12-20",
		"travelers":  2,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		Enquiry struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"enquiry"`
		Message string `json:"message"`
	}
	helpers.DecodeJSON(t, body, &created)
	assert.Equal(t, "NEW", created.Enquiry.Status)
	assert.NotEmpty(t, created.Message)
	assert.Len(t, ts.Mail.Sent(), 2)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/enquiries", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	editor := helpers.LoginEditor(t, ts)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/enquiries", editor, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "leads are admin only")

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/enquiries/"+created.Enquiry.ID, admin, map[string]interface{}{"status": "CONFIRMED"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"CONFIRMED"`)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/enquiries?status=CONFIRMED", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, created.Enquiry.ID)
}

func TestEnquiry_Validation(t *testing.T) {
	ts := helpers.NewTestServer(t)

	cases := map[string]map[string]interface{}{
		"missing email": {"name": "Ravi"},
		"bad email":     {"name": "Ravi", "email": "not-an-email"},
		"bad date":      {"name": "Ravi", "email": "ravi@example.com", "travelDate": "20/12/2026"},
		"bad type":      {"name": "Ravi", "email": "ravi@example.com", "type": "COMPLAINT"},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/enquiries", "", payload)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
		})
	}
	assert.Empty(t, ts.Mail.Sent())
}
