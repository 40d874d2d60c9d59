package notification

import (
	"errors"
	"time"
)

// Kind classifies a notification for icon and grouping purposes.
type Kind string

const (
	KindDealExpiring Kind = "deal_expiring"
	KindPointsEarned Kind = "points_earned"
	KindDealVerified Kind = "deal_verified"
	KindNewDeal      Kind = "new_deal"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindDealExpiring, KindPointsEarned, KindDealVerified, KindNewDeal:
		return true
	default:
		return false
	}
}

var ErrInvalidKind = errors.New("invalid notification kind")

// Notification is a per-user inbox entry. RelatedDealID is a weak
// reference: lookup only, and it may dangle if the deal is absent.
type Notification struct {
	id            string
	userID        string
	kind          Kind
	title         string
	message       string
	timestamp     time.Time
	read          bool
	relatedDealID string
}

func New(id, userID string, kind Kind, title, message string, ts time.Time, relatedDealID string) (*Notification, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Notification{
		id:            id,
		userID:        userID,
		kind:          kind,
		title:         title,
		message:       message,
		timestamp:     ts,
		relatedDealID: relatedDealID,
	}, nil
}

func Reconstruct(id, userID string, kind Kind, title, message string, ts time.Time, read bool, relatedDealID string) *Notification {
	return &Notification{
		id:            id,
		userID:        userID,
		kind:          kind,
		title:         title,
		message:       message,
		timestamp:     ts,
		read:          read,
		relatedDealID: relatedDealID,
	}
}

// MarkRead is idempotent.
func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) ID() string            { return n.id }
func (n *Notification) UserID() string        { return n.userID }
func (n *Notification) Kind() Kind            { return n.kind }
func (n *Notification) Title() string         { return n.title }
func (n *Notification) Message() string       { return n.message }
func (n *Notification) Timestamp() time.Time  { return n.timestamp }
func (n *Notification) Read() bool            { return n.read }
func (n *Notification) RelatedDealID() string { return n.relatedDealID }
