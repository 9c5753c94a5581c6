package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaushalendrasingh/portfolio-backend/models"
)

func submitInquiry(t *testing.T, env testEnv, fields map[string]string) *models.Inquiry {
	t.Helper()

	body, contentType := multipartBody(t, fields, "")
	rec := env.do(t, http.MethodPost, "/inquiries", body, false, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	inquiry := decodeJSON[models.Inquiry](t, rec)
	return &inquiry
}

func TestCreateInquiry(t *testing.T) {
	env := newTestEnv(t)

	inquiry := submitInquiry(t, env, map[string]string{
		"name":    "Alice",
		"email":   "alice@example.com",
		"company": "Acme Corp",
		"message": "hello there",
	})
	assert.NotZero(t, inquiry.ID)
	assert.Equal(t, "Alice", inquiry.Name)
	require.NotNil(t, inquiry.Company)
	assert.Equal(t, "Acme Corp", *inquiry.Company)
	assert.Nil(t, inquiry.AttachmentPath)
}

func TestCreateInquiryRejectsInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"name":    "Alice",
		"email":   "not-an-email",
		"message": "hello",
	}, "")
	rec := env.do(t, http.MethodPost, "/inquiries", body, false, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateInquiryRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t)

	for name, fields := range map[string]map[string]string{
		"missing name":    {"email": "a@example.com", "message": "hi"},
		"missing message": {"name": "Alice", "email": "a@example.com"},
		"missing email":   {"name": "Alice", "message": "hi"},
	} {
		t.Run(name, func(t *testing.T) {
			body, contentType := multipartBody(t, fields, "")
			rec := env.do(t, http.MethodPost, "/inquiries", body, false, contentType)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateInquiryWithAttachment(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"name":    "Alice",
		"email":   "alice@example.com",
		"message": "see attached",
	}, "attachment", "resume.pdf")
	rec := env.do(t, http.MethodPost, "/inquiries", body, false, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	inquiry := decodeJSON[models.Inquiry](t, rec)
	require.NotNil(t, inquiry.AttachmentPath)
	assert.True(t, env.assets.Exists(*inquiry.AttachmentPath))
}

func TestListInquiriesRequiresAdminKey(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/inquiries", nil, false, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListInquiriesPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 1; i <= 15; i++ {
		submitInquiry(t, env, map[string]string{
			"name":    fmt.Sprintf("Visitor %d", i),
			"email":   fmt.Sprintf("visitor%d@example.com", i),
			"message": "hi",
		})
	}

	rec := env.do(t, http.MethodGet, "/inquiries?page_size=10", nil, true, "")
	require.Equal(t, http.StatusOK, rec.Code)
	firstPage := decodeJSON[InquiryListResponse](t, rec)
	assert.EqualValues(t, 15, firstPage.Total)
	assert.Equal(t, 2, firstPage.TotalPages)
	assert.Len(t, firstPage.Items, 10)

	rec = env.do(t, http.MethodGet, "/inquiries?page=2&page_size=10", nil, true, "")
	require.Equal(t, http.StatusOK, rec.Code)
	secondPage := decodeJSON[InquiryListResponse](t, rec)
	assert.Len(t, secondPage.Items, 5)
}

func TestListInquiriesEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/inquiries", nil, true, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeJSON[InquiryListResponse](t, rec)
	assert.Zero(t, page.Total)
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestListInquiriesSearch(t *testing.T) {
	env := newTestEnv(t)
	submitInquiry(t, env, map[string]string{
		"name":    "Alice",
		"email":   "alice@example.com",
		"company": "Acme Corp",
		"message": "hello",
	})
	submitInquiry(t, env, map[string]string{
		"name":    "Bob",
		"email":   "bob@example.com",
		"message": "unrelated",
	})

	rec := env.do(t, http.MethodGet, "/inquiries?search=acme", nil, true, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeJSON[InquiryListResponse](t, rec)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Alice", page.Items[0].Name)
}

func TestListInquiriesClampsPageSize(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/inquiries?page_size=9999", nil, true, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeJSON[InquiryListResponse](t, rec)
	assert.Equal(t, maxPageSize, page.PageSize)

	rec = env.do(t, http.MethodGet, "/inquiries?page_size=0", nil, true, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page = decodeJSON[InquiryListResponse](t, rec)
	assert.Equal(t, defaultPageSize, page.PageSize)
}
