package redemption

import (
	"errors"
	"time"

	"savesphere/internal/domain/deal"
)

var (
	// ErrInvalidTransition marks a transition not defined from the current
	// state. Callers treat it as a logged no-op, not a failure.
	ErrInvalidTransition = errors.New("invalid redemption transition")
	// ErrWrongDealType marks an action the deal's channel never defines,
	// such as showing an in-store code for an online deal.
	ErrWrongDealType = errors.New("action not defined for deal type")
)

// Redemption tracks one user's lifecycle against one deal. State is keyed
// by the (deal, user) pair; it is never shared across viewers.
type Redemption struct {
	dealID    string
	userID    string
	dealType  deal.Type
	state     State
	code      string
	updatedAt time.Time
}

func New(dealID, userID string, dealType deal.Type) *Redemption {
	return &Redemption{
		dealID:   dealID,
		userID:   userID,
		dealType: dealType,
		state:    StateAvailable,
	}
}

func Reconstruct(dealID, userID string, dealType deal.Type, state State, code string, updatedAt time.Time) *Redemption {
	return &Redemption{
		dealID:    dealID,
		userID:    userID,
		dealType:  dealType,
		state:     state,
		code:      code,
		updatedAt: updatedAt,
	}
}

// ShowCode moves Available to CodeShown for in-store deals, binding the
// redemption code shown to the cashier. Re-showing the code is a no-op
// that keeps the original code. No points are awarded here.
func (r *Redemption) ShowCode(code string, now time.Time) error {
	if r.dealType != deal.TypeInStore {
		return ErrWrongDealType
	}
	switch r.state {
	case StateAvailable:
		r.state = StateCodeShown
		r.code = code
		r.updatedAt = now
		return nil
	case StateCodeShown:
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Redeem marks the deal consumed and returns the points delta. In-store
// deals continue straight into ReceiptPending; online and affiliate deals
// land on the terminal Redeemed. Repeats from a settled state award
// nothing.
func (r *Redemption) Redeem(now time.Time) (int, error) {
	switch r.dealType {
	case deal.TypeInStore:
		switch r.state {
		case StateAvailable, StateCodeShown:
			r.state = StateReceiptPending
			r.updatedAt = now
			return PointsInStoreRedeem, nil
		case StateReceiptPending, StateReceiptUploaded:
			return 0, nil
		}
	case deal.TypeOnline, deal.TypeAffiliate:
		switch r.state {
		case StateAvailable:
			r.state = StateRedeemed
			r.updatedAt = now
			return PointsOnlineRedeem, nil
		case StateRedeemed:
			return 0, nil
		}
	}
	return 0, ErrInvalidTransition
}

// UploadReceipt closes the in-store path with the receipt bonus.
// Terminal; a second upload is a no-op.
func (r *Redemption) UploadReceipt(now time.Time) (int, error) {
	if r.dealType != deal.TypeInStore {
		return 0, ErrWrongDealType
	}
	switch r.state {
	case StateReceiptPending:
		r.state = StateReceiptUploaded
		r.updatedAt = now
		return PointsReceiptUpload, nil
	case StateReceiptUploaded:
		return 0, nil
	default:
		return 0, ErrInvalidTransition
	}
}

func (r *Redemption) DealID() string       { return r.dealID }
func (r *Redemption) UserID() string       { return r.userID }
func (r *Redemption) DealType() deal.Type  { return r.dealType }
func (r *Redemption) State() State         { return r.state }
func (r *Redemption) Code() string         { return r.code }
func (r *Redemption) UpdatedAt() time.Time { return r.updatedAt }
