package domain

// Firestore field names of the per-kind counters on a daily metrics document.
const (
	FieldBusinessCaseReminders  = "businessCaseReminders"
	FieldTransportNotifications = "transportNotifications"
)

// DailyMetrics is the per-tenant, per-day delivery counter document.
// Lazily created by the hourly rollup, incremented by the dispatcher on
// every successful send, never decremented. The date key changing at
// midnight rolls the counters over implicitly.
type DailyMetrics struct {
	CompanyID              string `firestore:"companyID" json:"companyID"`
	Date                   string `firestore:"date" json:"date"`
	BusinessCaseReminders  int64  `firestore:"businessCaseReminders" json:"businessCaseReminders"`
	TransportNotifications int64  `firestore:"transportNotifications" json:"transportNotifications"`
}

// CounterField maps a reminder kind to the daily counter it increments.
func CounterField(kind Kind) string {
	if kind.IsTransport() {
		return FieldTransportNotifications
	}

	return FieldBusinessCaseReminders
}
