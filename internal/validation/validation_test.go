package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/complaint-service/internal/domain"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "Jordan Smith", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"at limit", strings.Repeat("a", 255), false},
		{"over limit", strings.Repeat("a", 256), true},
		{"multibyte at limit", strings.Repeat("é", 255), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs Errors
			Name(&errs, "name", tt.value)
			assert.Equal(t, tt.wantErr, len(errs) > 0)
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "user@example.com", false},
		{"mixed case", "User@Example.COM", false},
		{"empty", "", true},
		{"missing domain", "user@", true},
		{"missing at", "userexample.com", true},
		{"display name form", "User <user@example.com>", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs Errors
			Email(&errs, "email", tt.value)
			assert.Equal(t, tt.wantErr, len(errs) > 0)
		})
	}
}

func TestBodyBounds(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		min     int
		max     int
		wantErr bool
	}{
		{"at min", strings.Repeat("x", 10), MinComplaintLength, MaxComplaintLength, false},
		{"below min", strings.Repeat("x", 9), MinComplaintLength, MaxComplaintLength, true},
		{"at max", strings.Repeat("x", 10000), MinComplaintLength, MaxComplaintLength, false},
		{"over max", strings.Repeat("x", 10001), MinComplaintLength, MaxComplaintLength, true},
		{"whitespace not counted", "         x", MinComplaintLength, MaxComplaintLength, true},
		{"comment single char", "x", MinCommentLength, MaxCommentLength, false},
		{"comment empty", "", MinCommentLength, MaxCommentLength, true},
		{"comment over max", strings.Repeat("x", 5001), MinCommentLength, MaxCommentLength, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs Errors
			Body(&errs, "body", tt.value, tt.min, tt.max)
			assert.Equal(t, tt.wantErr, len(errs) > 0)
		})
	}
}

func TestAdminStatus(t *testing.T) {
	var errs Errors
	AdminStatus(&errs, "status", domain.ComplaintStatusPending)
	AdminStatus(&errs, "status", domain.ComplaintStatusResolved)
	assert.Empty(t, errs)

	AdminStatus(&errs, "status", domain.ComplaintStatusWithdrawn)
	require.Len(t, errs, 1)

	AdminStatus(&errs, "status", domain.ComplaintStatus("Closed"))
	assert.Len(t, errs, 2)
}

func TestFilterStatus(t *testing.T) {
	var errs Errors
	FilterStatus(&errs, "status", domain.ComplaintStatusPending)
	FilterStatus(&errs, "status", domain.ComplaintStatusResolved)
	FilterStatus(&errs, "status", domain.ComplaintStatusWithdrawn)
	assert.Empty(t, errs)

	FilterStatus(&errs, "status", domain.ComplaintStatus("pending"))
	assert.Len(t, errs, 1)
}

func TestID(t *testing.T) {
	var errs Errors
	ID(&errs, "id", "9f1c2f6e-5a7d-4f3b-9c2e-8d4b6a1e0f21")
	assert.Empty(t, errs)

	ID(&errs, "id", "not-a-uuid")
	assert.Len(t, errs, 1)
}

func TestPagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, limit, errs := Pagination("", "")
		assert.Empty(t, errs)
		assert.Equal(t, DefaultPage, page)
		assert.Equal(t, DefaultLimit, limit)
	})

	t.Run("explicit values", func(t *testing.T) {
		page, limit, errs := Pagination("3", "50")
		assert.Empty(t, errs)
		assert.Equal(t, 3, page)
		assert.Equal(t, 50, limit)
	})

	t.Run("limit at max", func(t *testing.T) {
		_, limit, errs := Pagination("1", "100")
		assert.Empty(t, errs)
		assert.Equal(t, 100, limit)
	})

	t.Run("page zero rejected", func(t *testing.T) {
		_, _, errs := Pagination("0", "")
		require.Len(t, errs, 1)
		assert.Equal(t, "page", errs[0].Field)
	})

	t.Run("limit over max rejected", func(t *testing.T) {
		_, _, errs := Pagination("", "101")
		require.Len(t, errs, 1)
		assert.Equal(t, "limit", errs[0].Field)
	})

	t.Run("non numeric rejected", func(t *testing.T) {
		_, _, errs := Pagination("abc", "xyz")
		assert.Len(t, errs, 2)
	})
}

func TestErrorsDetails(t *testing.T) {
	var errs Errors
	assert.Nil(t, errs.Details())

	errs.add("name", "is required")
	errs.add("email", "must be a valid email address")
	details := errs.Details()
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be a valid email address", details["email"])
}
