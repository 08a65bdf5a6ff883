package transaction

import (
	"time"

	"roomrental/model"
)

// Action is something the UI may offer for a transaction row.
type Action string

const (
	ActionUploadProof Action = "UPLOAD_PROOF"
	ActionCancel      Action = "CANCEL"
	ActionPayNow      Action = "PAY_NOW"
	ActionReview      Action = "REVIEW"
)

// PermittedActions gates row actions client-side. These gates are advisory:
// the backend re-validates every transition and may still reject.
//
//   - upload proof: manual transfer, still waiting for payment
//   - cancel: waiting for payment and no proof attached yet
//   - pay now: gateway method, still waiting for payment
//   - review: paid and the stay has already ended
func PermittedActions(t model.Transaction, now time.Time) map[Action]bool {
	waiting := t.Status == model.StatusWaitingPayment
	return map[Action]bool{
		ActionUploadProof: t.PaymentMethod == model.MethodManualTransfer && waiting,
		ActionCancel:      waiting && !t.HasProof(),
		ActionPayNow:      t.PaymentMethod == model.MethodGateway && waiting,
		ActionReview:      t.Status == model.StatusPaid && t.EndDate.Before(now),
	}
}
