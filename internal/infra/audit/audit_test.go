//go:build unit

package audit_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"borrowing-service/internal/infra/audit"
	"borrowing-service/internal/usecase/commands"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogAuditLogger_Record(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	a := audit.NewSlogAuditLogger(logger)

	err := a.Record(context.Background(), commands.AuditEntry{
		Action:     commands.AuditActionBorrowingCreated,
		BorrowerID: 42,
		BookUnitID: 7,
		StartDate:  time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "audit", rec["log_type"])
	assert.Equal(t, "borrowing.created", rec["action"])
	assert.EqualValues(t, 42, rec["borrower_id"])
	assert.EqualValues(t, 7, rec["book_unit_id"])
	assert.Equal(t, "2026-04-02", rec["start_date"])
	assert.Equal(t, "2026-04-16", rec["end_date"])
	assert.NotContains(t, buf.String(), "shipping")
}
