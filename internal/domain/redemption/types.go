package redemption

// State is the per (deal, user) redemption lifecycle position.
type State string

const (
	StateAvailable       State = "available"
	StateCodeShown       State = "code_shown"
	StateRedeemed        State = "redeemed"
	StateReceiptPending  State = "receipt_pending"
	StateReceiptUploaded State = "receipt_uploaded"
)

func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is defined. Actions on
// terminal states are no-ops, never errors.
func (s State) IsTerminal() bool {
	return s == StateRedeemed || s == StateReceiptUploaded
}

// Fixed point rewards for user actions.
const (
	PointsInStoreRedeem = 10
	PointsOnlineRedeem  = 5
	PointsReceiptUpload = 10
	PointsVerifyDeal    = 5
	PointsPostDeal      = 10
)
