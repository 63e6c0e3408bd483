package returnform

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/model"
	"inventory-service/pkg/client"
)

type fakeSubmitter struct {
	fail      bool
	submitted []client.ReturnInput
}

func (f *fakeSubmitter) CreateReturn(ctx context.Context, in client.ReturnInput) (*model.ProductReturn, error) {
	if f.fail {
		return nil, errors.New("boom")
	}
	f.submitted = append(f.submitted, in)
	return &model.ProductReturn{
		ID:       uint(len(f.submitted)),
		UserID:   in.UserID,
		TargetID: in.ID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Reason:   in.Reason,
	}, nil
}

func TestSubmitProductReturnRoundTrip(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub, 7, nil)

	f.SetTarget(42)
	f.SetQuantity(3)
	f.SetReason(model.ReturnReasonReturn)

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, sub.submitted, 1)

	got := sub.submitted[0]
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, uint(42), got.ID)
	assert.Equal(t, model.ReturnTypeProduct, got.Type)
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, model.ReturnReasonReturn, got.Reason)
	assert.Empty(t, got.OtherReason, "no otherReason required for Return")

	assert.Equal(t, StateClosed, f.State(), "dialog closes on success")
}

func TestSubmitOrderReturn(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub, 7, nil)

	f.SwitchTab(model.ReturnTypeOrder)
	f.SetTarget(9)
	f.SetQuantity(1)
	f.SetReason(model.ReturnReasonRefund)

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, sub.submitted, 1)
	assert.Equal(t, model.ReturnTypeOrder, sub.submitted[0].Type)
	assert.Equal(t, uint(9), sub.submitted[0].ID)
}

func TestOtherReasonRequiredWithOther(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub, 7, nil)

	f.SetTarget(42)
	f.SetQuantity(1)
	f.SetReason(model.ReturnReasonOther)
	f.SetOtherReason("")

	require.NoError(t, f.Submit(context.Background()))
	assert.Empty(t, sub.submitted, "validation failure must not issue a request")
	assert.Equal(t, StateEditing, f.State())
	assert.Contains(t, f.FieldErrors(), "otherReason")
}

func TestOtherReasonLengthLimit(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub, 7, nil)

	f.SetTarget(42)
	f.SetQuantity(1)
	f.SetReason(model.ReturnReasonOther)
	f.SetOtherReason(strings.Repeat("x", 501))

	require.NoError(t, f.Submit(context.Background()))
	assert.Empty(t, sub.submitted)
	assert.Contains(t, f.FieldErrors(), "otherReason")

	f.SetOtherReason(strings.Repeat("x", 500))
	require.NoError(t, f.Submit(context.Background()))
	assert.Len(t, sub.submitted, 1)
	assert.Equal(t, strings.Repeat("x", 500), sub.submitted[0].OtherReason)
}

func TestMissingTargetFailsValidation(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub, 7, nil)

	f.SetQuantity(2)
	f.SetReason(model.ReturnReasonLost)

	require.NoError(t, f.Submit(context.Background()))
	assert.Empty(t, sub.submitted)
	assert.Contains(t, f.FieldErrors(), "id")
}

func TestZeroQuantityFailsValidation(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub, 7, nil)

	f.SetTarget(42)
	f.SetReason(model.ReturnReasonLost)

	require.NoError(t, f.Submit(context.Background()))
	assert.Empty(t, sub.submitted)
	assert.Contains(t, f.FieldErrors(), "quantity")
}

func TestTabSwitchResetsAllFields(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub, 7, nil)

	f.SetTarget(42)
	f.SetQuantity(3)
	f.SetReason(model.ReturnReasonLost)
	f.SetOtherReason("scrap")

	f.SwitchTab(model.ReturnTypeOrder)
	assert.Equal(t, model.ReturnTypeOrder, f.ActiveTab())
	assert.Equal(t, StateEditing, f.State())

	// The reset selection must fail validation until re-entered.
	require.NoError(t, f.Submit(context.Background()))
	assert.Empty(t, sub.submitted)
	assert.Contains(t, f.FieldErrors(), "id")
	assert.Contains(t, f.FieldErrors(), "quantity")
}

func TestSubmitFailureKeepsFormOpen(t *testing.T) {
	sub := &fakeSubmitter{fail: true}
	f := New(sub, 7, nil)

	f.SetTarget(42)
	f.SetQuantity(3)
	f.SetReason(model.ReturnReasonReturn)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateEditing, f.State(), "dialog stays open on failure")
	assert.NotEmpty(t, f.SubmitError())

	// A retry after the collaborator recovers goes through.
	sub.fail = false
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, StateClosed, f.State())
}

func TestClosedFormIgnoresEdits(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(sub, 7, nil)

	f.SetTarget(42)
	f.SetQuantity(1)
	f.SetReason(model.ReturnReasonLost)
	require.NoError(t, f.Submit(context.Background()))
	require.Equal(t, StateClosed, f.State())

	f.SetQuantity(99)
	require.NoError(t, f.Submit(context.Background()))
	assert.Len(t, sub.submitted, 1, "a closed form must not resubmit")

	f.Reopen()
	assert.Equal(t, StateEditing, f.State())
	assert.Empty(t, f.FieldErrors())
}
