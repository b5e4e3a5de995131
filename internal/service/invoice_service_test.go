package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInvoiceSvc() (InvoiceService, *stubInvoiceRepo, *stubClientRepo, *stubProductRepo, *stubStatementRepo) {
	invoiceRepo := newStubInvoiceRepo()
	clientRepo := newStubClientRepo()
	productRepo := newStubProductRepo()
	statementRepo := newStubStatementRepo()
	svc := NewInvoiceService(invoiceRepo, clientRepo, productRepo, statementRepo, nil)
	return svc, invoiceRepo, clientRepo, productRepo, statementRepo
}

func invoiceRequest(clientID, productID string, paymentType string, totalMRP decimal.Decimal) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:     clientID,
		OrderDate:    "2026-08-01",
		ShippingDate: "2026-08-03",
		Platform:     "direct",
		PaymentType:  paymentType,
		TotalTP:      decimal.NewFromInt(800),
		TotalMRP:     totalMRP,
		Lines: []dto.InvoiceLineRequest{
			{
				ProductID: productID,
				Quantity:  10,
				UnitTP:    decimal.NewFromInt(80),
				UnitMRP:   decimal.NewFromInt(100),
			},
		},
	}
}

func TestCreateInvoice_Cash_SettlesImmediately(t *testing.T) {
	svc, _, clientRepo, productRepo, statementRepo := buildInvoiceSvc()
	client := clientRepo.seed("C-001", "Akota Traders")
	product := productRepo.seed("Antacid 50ml", "24x50ml")

	resp, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), model.PaymentTypeCash, decimal.NewFromInt(1000)))
	require.NoError(t, err)

	assert.Equal(t, model.PaymentPaid, resp.Payment)
	assert.True(t, resp.PaidAmount.Equal(decimal.NewFromInt(1000)))
	assert.Nil(t, resp.CreditPeriod)

	// Two postings: the sale and its immediate settlement.
	postings := statementRepo.byReference(model.ReferenceInvoice, uuid.MustParse(resp.ID))
	require.Len(t, postings, 2)
	purposes := map[string]decimal.Decimal{}
	for _, p := range postings {
		purposes[p.Purpose] = p.Amount
	}
	assert.True(t, purposes[model.PurposeCustomerPayable].Equal(decimal.NewFromInt(1000)))
	assert.True(t, purposes[model.PurposePaidByCustomer].Equal(decimal.NewFromInt(1000)))
}

func TestCreateInvoice_Credit_StartsUnpaid(t *testing.T) {
	svc, _, clientRepo, productRepo, statementRepo := buildInvoiceSvc()
	client := clientRepo.seed("C-002", "Barisal Pharma")
	product := productRepo.seed("Vitamin C 250mg", "100ct")

	req := invoiceRequest(client.ID.String(), product.ID.String(), "Credit", decimal.NewFromInt(2500))
	cp := "2026-09-15"
	req.CreditPeriod = &cp

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, model.PaymentUnpaid, resp.Payment)
	assert.True(t, resp.PaidAmount.IsZero())
	require.NotNil(t, resp.CreditPeriod)
	assert.Equal(t, "2026-09-15", *resp.CreditPeriod)

	// Only the receivable is posted.
	postings := statementRepo.byReference(model.ReferenceInvoice, uuid.MustParse(resp.ID))
	require.Len(t, postings, 1)
	assert.Equal(t, model.PurposeCustomerPayable, postings[0].Purpose)
}

func TestCreateInvoice_InvoiceNumberFormat(t *testing.T) {
	svc, _, clientRepo, productRepo, _ := buildInvoiceSvc()
	client := clientRepo.seed("C-003", "Dhaka Distributors")
	product := productRepo.seed("Paracetamol 500mg", "10x10")

	resp1, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), model.PaymentTypeCash, decimal.NewFromInt(100)))
	require.NoError(t, err)
	resp2, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), model.PaymentTypeCash, decimal.NewFromInt(100)))
	require.NoError(t, err)

	prefix := time.Now().Format("20060102")
	assert.Equal(t, prefix+"-000001", resp1.InvoiceNo)
	assert.Equal(t, prefix+"-000002", resp2.InvoiceNo)
}

func TestCreateInvoice_UnknownClient(t *testing.T) {
	svc, _, _, productRepo, _ := buildInvoiceSvc()
	product := productRepo.seed("Ibuprofen 200mg", "10x10")

	_, err := svc.Create(context.Background(), invoiceRequest(
		uuid.NewString(), product.ID.String(), model.PaymentTypeCash, decimal.NewFromInt(100)))
	assert.True(t, apierror.IsStatus(err, http.StatusNotFound))
}

func TestCreateInvoice_UnknownProduct(t *testing.T) {
	svc, invoiceRepo, clientRepo, _, statementRepo := buildInvoiceSvc()
	client := clientRepo.seed("C-004", "Khulna Agencies")

	_, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), uuid.NewString(), model.PaymentTypeCash, decimal.NewFromInt(100)))
	assert.True(t, apierror.IsStatus(err, http.StatusNotFound))

	// Nothing persisted.
	assert.Empty(t, invoiceRepo.invoices)
	assert.Empty(t, statementRepo.statements)
}

func TestMarkPaid_PostsRemainingBalance(t *testing.T) {
	svc, _, clientRepo, productRepo, statementRepo := buildInvoiceSvc()
	client := clientRepo.seed("C-005", "Sylhet Traders")
	product := productRepo.seed("Cough Syrup", "100ml")

	resp, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), "Credit", decimal.NewFromInt(3000)))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	ok, err := svc.MarkPaid(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := svc.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, updated.Payment)
	assert.True(t, updated.PaidAmount.Equal(decimal.NewFromInt(3000)))
	assert.Nil(t, updated.CreditPeriod)

	var paid decimal.Decimal
	for _, p := range statementRepo.byReference(model.ReferenceInvoice, id) {
		if p.Purpose == model.PurposePaidByCustomer {
			paid = paid.Add(p.Amount)
		}
	}
	assert.True(t, paid.Equal(decimal.NewFromInt(3000)))
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	svc, _, clientRepo, productRepo, _ := buildInvoiceSvc()
	client := clientRepo.seed("C-006", "Comilla Stores")
	product := productRepo.seed("Saline 1L", "12x1L")

	resp, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), model.PaymentTypeCash, decimal.NewFromInt(500)))
	require.NoError(t, err)

	_, err = svc.MarkPaid(context.Background(), uuid.MustParse(resp.ID))
	assert.True(t, apierror.IsStatus(err, http.StatusForbidden))
}

func TestPartialPayment_AccumulatesAndSettles(t *testing.T) {
	svc, _, clientRepo, productRepo, statementRepo := buildInvoiceSvc()
	client := clientRepo.seed("C-007", "Rajshahi Traders")
	product := productRepo.seed("Zinc 20mg", "30ct")

	resp, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), "Credit", decimal.NewFromInt(1000)))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	ok, err := svc.PartialPayment(context.Background(), id, decimal.NewFromInt(400))
	require.NoError(t, err)
	assert.True(t, ok)

	mid, _ := svc.FindByID(context.Background(), id)
	assert.Equal(t, model.PaymentUnpaid, mid.Payment)
	assert.True(t, mid.PaidAmount.Equal(decimal.NewFromInt(400)))

	// Exactly covering the remainder settles the invoice.
	ok, err = svc.PartialPayment(context.Background(), id, decimal.NewFromInt(600))
	require.NoError(t, err)
	assert.True(t, ok)

	final, _ := svc.FindByID(context.Background(), id)
	assert.Equal(t, model.PaymentPaid, final.Payment)
	assert.True(t, final.PaidAmount.Equal(decimal.NewFromInt(1000)))
	assert.Nil(t, final.CreditPeriod)

	// Paid postings sum to the invoice total.
	var paid decimal.Decimal
	for _, p := range statementRepo.byReference(model.ReferenceInvoice, id) {
		if p.Purpose == model.PurposePaidByCustomer {
			paid = paid.Add(p.Amount)
		}
	}
	assert.True(t, paid.Equal(decimal.NewFromInt(1000)))
}

func TestPartialPayment_OverpaymentRejected(t *testing.T) {
	svc, _, clientRepo, productRepo, statementRepo := buildInvoiceSvc()
	client := clientRepo.seed("C-008", "Bogra Agencies")
	product := productRepo.seed("ORS Sachet", "50ct")

	resp, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), "Credit", decimal.NewFromInt(1000)))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	_, err = svc.PartialPayment(context.Background(), id, decimal.NewFromInt(1001))
	assert.True(t, apierror.IsStatus(err, http.StatusConflict))

	// Invoice unchanged, no payment posting.
	inv, _ := svc.FindByID(context.Background(), id)
	assert.True(t, inv.PaidAmount.IsZero())
	assert.Equal(t, model.PaymentUnpaid, inv.Payment)
	for _, p := range statementRepo.byReference(model.ReferenceInvoice, id) {
		assert.NotEqual(t, model.PurposePaidByCustomer, p.Purpose)
	}
}

func TestPartialPayment_NonPositiveAmount(t *testing.T) {
	svc, _, clientRepo, productRepo, _ := buildInvoiceSvc()
	client := clientRepo.seed("C-009", "Mymensingh Stores")
	product := productRepo.seed("Calcium 500mg", "60ct")

	resp, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), "Credit", decimal.NewFromInt(100)))
	require.NoError(t, err)

	_, err = svc.PartialPayment(context.Background(), uuid.MustParse(resp.ID), decimal.Zero)
	assert.True(t, apierror.IsStatus(err, http.StatusBadRequest))
}

func TestRemoveInvoice_ReversesAllPostings(t *testing.T) {
	svc, invoiceRepo, clientRepo, productRepo, statementRepo := buildInvoiceSvc()
	client := clientRepo.seed("C-010", "Jessore Traders")
	product := productRepo.seed("Amoxicillin 500mg", "10x10")

	resp, err := svc.Create(context.Background(), invoiceRequest(
		client.ID.String(), product.ID.String(), "Credit", decimal.NewFromInt(2000)))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	_, err = svc.PartialPayment(context.Background(), id, decimal.NewFromInt(500))
	require.NoError(t, err)
	require.Len(t, statementRepo.byReference(model.ReferenceInvoice, id), 2)

	deleted, err := svc.Remove(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Empty(t, statementRepo.byReference(model.ReferenceInvoice, id))
	assert.Empty(t, invoiceRepo.invoices)
}

func TestRemoveInvoice_NotFound(t *testing.T) {
	svc, _, _, _, _ := buildInvoiceSvc()
	_, err := svc.Remove(context.Background(), uuid.New())
	assert.True(t, apierror.IsStatus(err, http.StatusNotFound))
}
