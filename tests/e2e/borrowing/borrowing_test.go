//go:build e2e

package borrowing_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"borrowing-service/internal/handler/api"
	"borrowing-service/internal/handler/dto/response"
	"borrowing-service/internal/pkg/dates"
	"borrowing-service/internal/usecase/shared"
	"borrowing-service/tests/common/builder"
	"borrowing-service/tests/common/dbtest"
	"borrowing-service/tests/common/httptest"
	"borrowing-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	borrowingsURL         = "/api/v1/borrowings"
	borrowingURL          = "/api/v1/borrowings/%d"
	bookUnitBorrowingsURL = "/api/v1/book-units/%d/borrowings"
)

type BorrowingSuite struct {
	e2e.SharedSuite
}

func (s *BorrowingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBorrowingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BorrowingSuite))
}

// seal encrypts the record's address the way the service stores it.
func (s *BorrowingSuite) seal(t *testing.T, rec shared.BorrowingRecord) shared.BorrowingRecord {
	t.Helper()
	sealed, err := s.Cipher.Encrypt(rec.EncryptedShippingAddress)
	require.NoError(t, err)
	rec.EncryptedShippingAddress = sealed
	return rec
}

func today() time.Time {
	return dates.Today(time.Now().UTC())
}

// =============================================================================
// TestCreateBorrowing
// =============================================================================

func (s *BorrowingSuite) TestCreateBorrowing() {
	s.Run("Normal case: subscription covering the period creates the borrowing", func() {
		t := s.T()
		start, end := dates.AddDays(today(), 1), dates.AddDays(today(), 14)
		s.Subscriptions.Active(1001, dates.AddDays(today(), 30))

		reqBody := builder.NewBorrowingBuilder().WithPeriod(start, end).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowingsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BorrowingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotZero(t, created.ID)
		require.Equal(t, fmt.Sprintf(borrowingURL, created.ID), w.Header().Get("Location"))

		expected := response.BorrowingResponse{
			UserID:          1001,
			BookUnitID:      2002,
			ShippingAddress: reqBody.ShippingAddress,
			StartDate:       dates.Format(start),
			EndDate:         dates.Format(end),
			Active:          true,
			CreatedAt:       dates.Format(today()),
		}
		opts := cmpopts.IgnoreFields(response.BorrowingResponse{}, "ID")
		if diff := cmp.Diff(expected, created, opts); diff != "" {
			t.Errorf("borrowing response mismatch (-want +got):\n%s", diff)
		}

		// the address is stored encrypted
		raw := dbtest.RawShippingAddress(t, s.DB, created.ID)
		require.NotEqual(t, reqBody.ShippingAddress, raw)
		require.NotContains(t, raw, "Evergreen")

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(borrowingURL, created.ID), nil)
		require.Equal(t, http.StatusOK, dw.Code)
		var fetched response.BorrowingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &fetched))
		require.Equal(t, created, fetched)
	})

	s.Run("Normal case: subscription ending on the last day is enough", func() {
		t := s.T()
		end := dates.AddDays(today(), 10)
		s.Subscriptions.Active(1001, end)

		reqBody := builder.NewBorrowingBuilder().WithPeriod(dates.AddDays(today(), 1), end).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowingsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: no active subscription is rejected and nothing is stored", func() {
		t := s.T()
		reqBody := builder.NewBorrowingBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowingsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, api.NotEligibleMessage)
		require.Zero(t, dbtest.CountBorrowings(t, s.DB))
	})

	s.Run("Error case: subscription ending before the period is rejected", func() {
		t := s.T()
		s.Subscriptions.Active(1001, dates.AddDays(today(), 5))
		reqBody := builder.NewBorrowingBuilder().
			WithPeriod(dates.AddDays(today(), 1), dates.AddDays(today(), 6)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowingsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, api.NotEligibleMessage)
		require.Zero(t, dbtest.CountBorrowings(t, s.DB))
	})

	s.Run("Error case: start date in the past is rejected before the subscription check", func() {
		t := s.T()
		s.Subscriptions.Active(1001, dates.AddDays(today(), 30))
		reqBody := builder.NewBorrowingBuilder().
			WithPeriod(dates.AddDays(today(), -1), dates.AddDays(today(), 3)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowingsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Zero(t, dbtest.CountBorrowings(t, s.DB))
	})

	s.Run("Error case: unanswered subscription check fails with 500", func() {
		t := s.T()
		s.Subscriptions.Silence(1001)
		reqBody := builder.NewBorrowingBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowingsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal error")
		require.Zero(t, dbtest.CountBorrowings(t, s.DB))
	})
}

// =============================================================================
// TestQueryBorrowings
// =============================================================================

func (s *BorrowingSuite) TestQueryBorrowings() {
	create := func(t *testing.T, userID, bookUnitID int64) int64 {
		t.Helper()
		s.Subscriptions.Active(userID, dates.AddDays(today(), 60))
		reqBody := builder.NewBorrowingBuilder().
			WithUserID(userID).
			WithBookUnitID(bookUnitID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowingsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BorrowingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		return created.ID
	}
	list := func(t *testing.T, url string) []response.BorrowingResponse {
		t.Helper()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out []response.BorrowingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &out))
		return out
	}
	ids := func(rs []response.BorrowingResponse) []int64 {
		out := make([]int64, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	s.Run("Normal case: lists by user, by active flag and by book unit", func() {
		t := s.T()
		first := create(t, 7, 100)
		second := create(t, 7, 200)
		other := create(t, 8, 100)

		// a finished borrowing of user 7, stored directly
		past := builder.NewBorrowingBuilder().WithUserID(7).WithBookUnitID(300).AsExpired(3).BuildRecord()
		inactive := dbtest.InsertBorrowing(t, s.DB, s.seal(t, past))

		require.Equal(t, []int64{first, second, inactive}, ids(list(t, borrowingsURL+"?userId=7")))
		require.Equal(t, []int64{first, second}, ids(list(t, borrowingsURL+"?userId=7&active=true")))
		require.Equal(t, []int64{inactive}, ids(list(t, borrowingsURL+"?userId=7&active=false")))
		require.Equal(t, []int64{first, other}, ids(list(t, fmt.Sprintf(bookUnitBorrowingsURL, 100))))
		require.Empty(t, list(t, borrowingsURL+"?userId=9"))
	})

	s.Run("Error case: unknown id is 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(borrowingURL, 999999), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Borrowing not found")
	})
}

// =============================================================================
// TestRetentionSweep
// =============================================================================

func (s *BorrowingSuite) TestRetentionSweep() {
	s.Run("Normal case: only inactive borrowings past retention are deleted", func() {
		t := s.T()
		days := s.Config.Retention.Days
		insert := func(rec shared.BorrowingRecord) int64 {
			return dbtest.InsertBorrowing(t, s.DB, s.seal(t, rec))
		}

		longExpired := insert(builder.NewBorrowingBuilder().AsExpired(days + 10).BuildRecord())
		justExpired := insert(builder.NewBorrowingBuilder().AsExpired(days + 1).BuildRecord())
		atCutoff := insert(builder.NewBorrowingBuilder().AsExpired(days).BuildRecord())
		justRetained := insert(builder.NewBorrowingBuilder().AsExpired(days - 1).BuildRecord())
		recent := insert(builder.NewBorrowingBuilder().AsExpired(10).BuildRecord())
		stillActive := builder.NewBorrowingBuilder().AsExpired(days + 1).BuildRecord()
		stillActive.Active = true
		active := insert(stillActive)

		s.Sweeper.Sweep(t.Context())

		require.Equal(t, 4, dbtest.CountBorrowings(t, s.DB))
		for _, id := range []int64{atCutoff, justRetained, recent, active} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(borrowingURL, id), nil)
			require.Equal(t, http.StatusOK, w.Code, "borrowing %d should be retained", id)
		}
		for _, id := range []int64{longExpired, justExpired} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(borrowingURL, id), nil)
			require.Equal(t, http.StatusNotFound, w.Code, "borrowing %d should be deleted", id)
		}
	})
}
