// Package returnform implements the dual-mode return intake form: a return
// filed against a product or against a sales order, validated client-side
// and handed to a submission collaborator.
package returnform

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/pkg/client"
)

// State is the form's lifecycle phase.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateClosed
)

// Submitter persists a completed return record.
type Submitter interface {
	CreateReturn(ctx context.Context, in client.ReturnInput) (*model.ProductReturn, error)
}

// ProductTarget identifies the product a return is filed against.
type ProductTarget struct {
	ProductID uint `validate:"required,gt=0"`
}

// OrderTarget identifies the sales order a return is filed against.
type OrderTarget struct {
	OrderID uint `validate:"required,gt=0"`
}

// productValues is the validation rule set for the product tab.
type productValues struct {
	UserID      uint               `validate:"required"`
	Target      ProductTarget
	Quantity    int                `validate:"required,min=1"`
	Reason      model.ReturnReason `validate:"required,oneof=Lost Return Refund Other"`
	OtherReason string             `validate:"required_if=Reason Other,max=500"`
}

// orderValues is the validation rule set for the order tab.
type orderValues struct {
	UserID      uint               `validate:"required"`
	Target      OrderTarget
	Quantity    int                `validate:"required,min=1"`
	Reason      model.ReturnReason `validate:"required,oneof=Lost Return Refund Other"`
	OtherReason string             `validate:"required_if=Reason Other,max=500"`
}

var valid = validator.New(validator.WithRequiredStructEnabled())

// Form is the return intake dialog's state. It is confined to the UI event
// loop and is not safe for concurrent use.
type Form struct {
	submitter Submitter
	log       *zap.Logger
	userID    uint

	state       State
	activeTab   model.ReturnType
	targetID    uint
	quantity    int
	reason      model.ReturnReason
	otherReason string

	fieldErrors map[string]string
	submitErr   string
}

// New creates a form in editing state on the product tab, stamped with the
// current session's user.
func New(submitter Submitter, userID uint, log *zap.Logger) *Form {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Form{
		submitter: submitter,
		log:       log,
		userID:    userID,
	}
	f.reset(model.ReturnTypeProduct)
	return f
}

// reset restores all fields to their defaults and re-stamps user and type.
func (f *Form) reset(tab model.ReturnType) {
	f.state = StateEditing
	f.activeTab = tab
	f.targetID = 0
	f.quantity = 0
	f.reason = model.ReturnReasonOther
	f.otherReason = ""
	f.fieldErrors = nil
	f.submitErr = ""
}

// State returns the form's lifecycle phase.
func (f *Form) State() State {
	return f.state
}

// ActiveTab returns the mode the form is in.
func (f *Form) ActiveTab() model.ReturnType {
	return f.activeTab
}

// SwitchTab changes between the product and order modes. Switching resets
// every field, including the in-progress target selection and reason.
func (f *Form) SwitchTab(tab model.ReturnType) {
	if f.state != StateEditing || tab == f.activeTab {
		return
	}
	f.log.Info("Switched return form tab", zap.String("tab", string(tab)))
	f.reset(tab)
}

// SetTarget records the identifier resolved by the product or order search
// collaborator for the active tab.
func (f *Form) SetTarget(id uint) {
	if f.state != StateEditing {
		return
	}
	f.targetID = id
}

// SetQuantity records the quantity being returned.
func (f *Form) SetQuantity(q int) {
	if f.state != StateEditing {
		return
	}
	f.quantity = q
}

// SetReason records the return reason.
func (f *Form) SetReason(r model.ReturnReason) {
	if f.state != StateEditing {
		return
	}
	f.reason = r
}

// SetOtherReason records the free-text description used with the Other reason.
func (f *Form) SetOtherReason(s string) {
	if f.state != StateEditing {
		return
	}
	f.otherReason = s
}

// FieldErrors returns per-field validation messages from the last submit
// attempt, keyed by field name.
func (f *Form) FieldErrors() map[string]string {
	return f.fieldErrors
}

// SubmitError returns the inline message of the last failed submission, or "".
func (f *Form) SubmitError() string {
	return f.submitErr
}

// Validate checks the active tab's rule set and records per-field messages.
// It reports whether the form is ready to submit.
func (f *Form) Validate() bool {
	var err error
	switch f.activeTab {
	case model.ReturnTypeOrder:
		err = valid.Struct(orderValues{
			UserID:      f.userID,
			Target:      OrderTarget{OrderID: f.targetID},
			Quantity:    f.quantity,
			Reason:      f.reason,
			OtherReason: f.otherReason,
		})
	default:
		err = valid.Struct(productValues{
			UserID:      f.userID,
			Target:      ProductTarget{ProductID: f.targetID},
			Quantity:    f.quantity,
			Reason:      f.reason,
			OtherReason: f.otherReason,
		})
	}

	f.fieldErrors = translate(err)
	return len(f.fieldErrors) == 0
}

// translate maps validator errors onto the form's field names and messages.
func translate(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, e := range errs {
		switch e.Field() {
		case "ProductID", "OrderID":
			out["id"] = "Product/Order ID is required."
		case "Quantity":
			out["quantity"] = "Quantity must be greater than 0."
		case "Reason":
			out["reason"] = "Select a valid reason."
		case "OtherReason":
			if e.Tag() == "max" {
				out["otherReason"] = "Description cannot exceed 500 characters"
			} else {
				out["otherReason"] = "Please provide a reason when selecting 'Other'"
			}
		case "UserID":
			out["user_id"] = "No active session."
		}
	}
	return out
}

// Submit validates the form and hands the normalized return record to the
// submission collaborator. Validation failure keeps the form editing with
// per-field messages and issues no request. The dialog closes and resets
// only when the submission succeeds; on failure it stays open with an
// inline error so the user can retry.
func (f *Form) Submit(ctx context.Context) error {
	if f.state != StateEditing {
		return nil
	}

	if !f.Validate() {
		f.log.Warn("Return form failed validation",
			zap.Int("fields", len(f.fieldErrors)))
		return nil
	}

	record := client.ReturnInput{
		UserID:   f.userID,
		ID:       f.targetID,
		Type:     f.activeTab,
		Quantity: f.quantity,
		Reason:   f.reason,
	}
	if f.reason == model.ReturnReasonOther {
		record.OtherReason = f.otherReason
	}

	f.state = StateSubmitting
	f.submitErr = ""

	_, err := f.submitter.CreateReturn(ctx, record)
	if err != nil {
		f.log.Error("Return submission failed", zap.Error(err))
		f.state = StateEditing
		f.submitErr = "Failed to submit return. Please try again."
		return err
	}

	f.log.Info("Return submitted",
		zap.Uint("target_id", record.ID),
		zap.String("type", string(record.Type)))
	tab := f.activeTab
	f.reset(tab)
	f.state = StateClosed
	return nil
}

// Reopen returns a closed form to editing with fresh defaults.
func (f *Form) Reopen() {
	if f.state != StateClosed {
		return
	}
	f.reset(f.activeTab)
}
