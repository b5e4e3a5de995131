package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementCreate_ManualEntry(t *testing.T) {
	repo := newStubStatementRepo()
	svc := NewStatementService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateStatementRequest{
		Purpose: "Office Rent",
		Amount:  decimal.NewFromInt(15000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Office Rent", resp.Purpose)
	assert.Empty(t, resp.ReferenceType)
}

func TestStatementCreate_WithReference(t *testing.T) {
	repo := newStubStatementRepo()
	svc := NewStatementService(repo)
	refID := uuid.New()

	resp, err := svc.Create(context.Background(), dto.CreateStatementRequest{
		Purpose:       model.PurposeCustomerPayable,
		Amount:        decimal.NewFromInt(500),
		ReferenceType: model.ReferenceInvoice,
		ReferenceID:   refID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReferenceInvoice, resp.ReferenceType)
	assert.Equal(t, refID.String(), resp.ReferenceID)
}

func TestStatementUpdate_DocumentOwnedEntryForbidden(t *testing.T) {
	repo := newStubStatementRepo()
	svc := NewStatementService(repo)

	s := &model.Statement{
		Purpose:       model.PurposePaidByCustomer,
		Amount:        decimal.NewFromInt(100),
		ReferenceType: model.ReferenceInvoice,
		ReferenceID:   uuid.New(),
	}
	require.NoError(t, repo.Create(context.Background(), s))

	newPurpose := "Adjusted"
	_, err := svc.Update(context.Background(), s.ID, dto.UpdateStatementRequest{Purpose: &newPurpose})
	assert.True(t, apierror.IsStatus(err, http.StatusForbidden))
}

func TestStatementUpdate_ManualEntry(t *testing.T) {
	repo := newStubStatementRepo()
	svc := NewStatementService(repo)

	s := &model.Statement{Purpose: "Misc", Amount: decimal.NewFromInt(100)}
	require.NoError(t, repo.Create(context.Background(), s))

	amount := decimal.NewFromInt(250)
	resp, err := svc.Update(context.Background(), s.ID, dto.UpdateStatementRequest{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(250)))
}

func TestStatementListByReference_UnknownType(t *testing.T) {
	svc := NewStatementService(newStubStatementRepo())
	_, err := svc.ListByReference(context.Background(), "order", uuid.New())
	assert.True(t, apierror.IsStatus(err, http.StatusBadRequest))
}

func TestStatementFindByID_NotFound(t *testing.T) {
	svc := NewStatementService(newStubStatementRepo())
	_, err := svc.FindByID(context.Background(), uuid.New())
	assert.True(t, apierror.IsStatus(err, http.StatusNotFound))
}
