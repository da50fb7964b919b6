package usecase

import (
	"testing"

	"github.com/enertrics/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactReq() *SubmitContactReq {
	return &SubmitContactReq{
		Name:    "Jordan Veliz",
		Email:   "jordan@fleetworks.example",
		Subject: "Fleet pricing",
		Message: "We are evaluating battery modules for a 40-vehicle fleet.",
	}
}

func TestContactUC_Validate_AcceptsValidRequest(t *testing.T) {
	uc := NewContactUC(nil, nil, nil, logger.NewSlogLogger())

	assert.NoError(t, uc.validateContact(validContactReq()))
}

func TestContactUC_Validate_OptionalFieldsMayBeEmpty(t *testing.T) {
	uc := NewContactUC(nil, nil, nil, logger.NewSlogLogger())

	req := validContactReq()
	req.Company = ""
	req.Phone = ""

	assert.NoError(t, uc.validateContact(req))
}

func TestContactUC_Validate_CollectsAllFieldErrors(t *testing.T) {
	uc := NewContactUC(nil, nil, nil, logger.NewSlogLogger())

	err := uc.validateContact(&SubmitContactReq{
		Name:    "A",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "short",
	})

	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Len(t, v.Fields, 4)
	assert.Contains(t, v.Fields, "name")
	assert.Contains(t, v.Fields, "email")
	assert.Contains(t, v.Fields, "subject")
	assert.Contains(t, v.Fields, "message")
}

func TestCareersUC_Validate_RequiresResume(t *testing.T) {
	uc := NewCareersUC(nil, nil, nil, nil, nil, logger.NewSlogLogger())

	err := uc.validateApplication(&ApplyReq{
		Name:  "Jordan Veliz",
		Email: "jordan@fleetworks.example",
	})

	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "resume")
}
