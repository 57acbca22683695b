package messaging

// Wire payloads. Field names follow the JSON contract shared with the
// subscription and inventory services.

type SubscriptionCheckRequested struct {
	UserID        int64  `json:"userId"`
	CorrelationID string `json:"correlationId"`
}

type SubscriptionCheckResult struct {
	UserID                int64   `json:"userId"`
	CorrelationID         string  `json:"correlationId"`
	HasActiveSubscription bool    `json:"hasActiveSubscription"`
	SubscriptionEndDate   *string `json:"subscriptionEndDate"` // YYYY-MM-DD
}

type BorrowingCreated struct {
	BookUnitID int64 `json:"bookUnitId"`
}
