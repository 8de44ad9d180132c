package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/apperr"
	"github.com/exclusiveng/360urban-backendmysql/repository"
)

func newInquiryService(t *testing.T) (*InquiryService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewInquiryService(repository.NewInquiryRepository(db), repository.NewPropertyRepository(db))
	return svc, db
}

func TestCreateInquiry(t *testing.T) {
	svc, db := newInquiryService(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleAgent)
	area := seedArea(t, db, "Jabi")
	p := seedProperty(t, db, owner, area, "Jabi Flat", 1000)

	inq, err := svc.CreateInquiry(&InquiryCreate{
		PropertyID: p.ID,
		Email:      "buyer@example.com",
		Phone:      "08030001111",
		Message:    "Is this still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryPending, inq.Status)
	assert.Nil(t, inq.UserID) // anonymous sender

	sender := seedUser(t, db, "sender@example.com", entity.RoleAgent)
	inq, err = svc.CreateInquiry(&InquiryCreate{
		PropertyID: p.ID,
		Email:      "sender@example.com",
		Phone:      "08030002222",
		Message:    "Interested",
		UserID:     &sender.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, inq.UserID)
	assert.Equal(t, sender.ID, *inq.UserID)
}

func TestCreateInquiry_Validation(t *testing.T) {
	svc, db := newInquiryService(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleAgent)
	area := seedArea(t, db, "Jabi")
	p := seedProperty(t, db, owner, area, "Jabi Flat", 1000)

	var appErr *apperr.Error

	_, err := svc.CreateInquiry(&InquiryCreate{
		PropertyID: p.ID, Email: "not-an-email", Phone: "08030001111", Message: "hi",
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Invalid email format", appErr.Message)

	_, err = svc.CreateInquiry(&InquiryCreate{
		PropertyID: p.ID, Email: "buyer@example.com", Phone: "12345", Message: "hi",
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Invalid phone number", appErr.Message)

	_, err = svc.CreateInquiry(&InquiryCreate{
		PropertyID: "55555555-5555-5555-5555-555555555555",
		Email:      "buyer@example.com", Phone: "08030001111", Message: "hi",
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestGetInquiries_Filters(t *testing.T) {
	svc, db := newInquiryService(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleAgent)
	area := seedArea(t, db, "Jabi")
	p1 := seedProperty(t, db, owner, area, "Flat One", 1000)
	p2 := seedProperty(t, db, owner, area, "Flat Two", 1000)

	mk := func(propertyID string) *entity.ContactInquiry {
		inq, err := svc.CreateInquiry(&InquiryCreate{
			PropertyID: propertyID, Email: "buyer@example.com", Phone: "08030001111", Message: "hi",
		})
		require.NoError(t, err)
		return inq
	}
	a := mk(p1.ID)
	mk(p1.ID)
	mk(p2.ID)

	_, err := svc.UpdateInquiryStatus(a.ID, entity.InquiryContacted)
	require.NoError(t, err)

	result, err := svc.GetInquiries(&InquiryFilters{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, result.Total)
	require.NotNil(t, result.Data[0].Property) // preloaded

	result, err = svc.GetInquiries(&InquiryFilters{PropertyID: p1.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Total)

	result, err = svc.GetInquiries(&InquiryFilters{Status: string(entity.InquiryContacted)})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, a.ID, result.Data[0].ID)

	result, err = svc.GetInquiries(&InquiryFilters{Status: string(entity.InquiryPending), PropertyID: p2.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
}

func TestUpdateInquiryStatus(t *testing.T) {
	svc, db := newInquiryService(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleAgent)
	area := seedArea(t, db, "Jabi")
	p := seedProperty(t, db, owner, area, "Jabi Flat", 1000)

	inq, err := svc.CreateInquiry(&InquiryCreate{
		PropertyID: p.ID, Email: "buyer@example.com", Phone: "08030001111", Message: "hi",
	})
	require.NoError(t, err)

	// transitions are unrestricted, including going backwards
	for _, status := range []entity.InquiryStatus{
		entity.InquiryContacted,
		entity.InquiryClosed,
		entity.InquiryPending,
	} {
		updated, err := svc.UpdateInquiryStatus(inq.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	_, err = svc.UpdateInquiryStatus(inq.ID, entity.InquiryStatus("Archived"))
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	_, err = svc.UpdateInquiryStatus("66666666-6666-6666-6666-666666666666", entity.InquiryContacted)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestDeleteInquiry(t *testing.T) {
	svc, db := newInquiryService(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleAgent)
	area := seedArea(t, db, "Jabi")
	p := seedProperty(t, db, owner, area, "Jabi Flat", 1000)

	inq, err := svc.CreateInquiry(&InquiryCreate{
		PropertyID: p.ID, Email: "buyer@example.com", Phone: "08030001111", Message: "hi",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInquiry(inq.ID))

	err = svc.DeleteInquiry(inq.ID)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
