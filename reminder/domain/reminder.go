package domain

import (
	"time"
)

// Kind discriminates the reminder domains served by the dispatch engine.
type Kind string

const (
	KindBusinessCase       Kind = "BUSINESS_CASE"
	KindTransportLoading   Kind = "TRANSPORT_LOADING"
	KindTransportUnloading Kind = "TRANSPORT_UNLOADING"
)

// Kinds lists every reminder kind a scheduler run processes, in order.
func Kinds() []Kind {
	return []Kind{KindBusinessCase, KindTransportLoading, KindTransportUnloading}
}

func (k Kind) Valid() bool {
	switch k {
	case KindBusinessCase, KindTransportLoading, KindTransportUnloading:
		return true
	}

	return false
}

// IsTransport reports whether the kind was derived from a tracked transport.
func (k Kind) IsTransport() bool {
	return k == KindTransportLoading || k == KindTransportUnloading
}

// Context carries the kind-specific display fields needed to render a
// notification body. Unused fields stay empty for the other kind.
type Context struct {
	CompanyName string `firestore:"companyName,omitempty"`
	ContactName string `firestore:"contactName,omitempty"`
	OrderNumber string `firestore:"orderNumber,omitempty"`
	Address     string `firestore:"address,omitempty"`
	Note        string `firestore:"note,omitempty"`

	// EventTime is the loading/unloading time shown in transport
	// notifications. Legacy records store it in heterogeneous encodings;
	// it is only ever read through times.Normalize.
	EventTime interface{} `firestore:"eventTime,omitempty"`

	// LeadMinutes is the reminder lead time shown in transport notifications.
	LeadMinutes int `firestore:"leadMinutes,omitempty"`
}

// Reminder is a stored instruction to fire one notification at a specific instant.
//
// The only persisted states are pending (Sent=false) and consumed (Sent=true);
// "due" is a query predicate, not a stored state. The only transition is
// pending to consumed, performed by the dispatcher on a successful send.
type Reminder struct {
	ID             string     `firestore:"-"`
	Kind           Kind       `firestore:"kind"`
	CompanyID      string     `firestore:"companyID"`
	TargetFireTime time.Time  `firestore:"targetFireTime"`
	Sent           bool       `firestore:"sent"`
	SentAt         *time.Time `firestore:"sentAt,omitempty"`
	SourceEntityID string     `firestore:"sourceEntityID"`
	RecipientEmail string     `firestore:"recipientEmail"`
	Context        Context    `firestore:"context"`
}

// Consumed reports whether the notification for this reminder was already sent.
func (r *Reminder) Consumed() bool {
	return r.Sent
}
