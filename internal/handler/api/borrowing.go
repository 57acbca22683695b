package api

import (
	"fmt"
	"net/http"
	"strconv"

	reqdto "borrowing-service/internal/handler/dto/request"
	resdto "borrowing-service/internal/handler/dto/response"
	"borrowing-service/internal/handler/httperr"
	"borrowing-service/internal/pkg/errs"
	"borrowing-service/internal/usecase/commands"
	"borrowing-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const NotEligibleMessage = "Borrowing failed: You probably do not have an active subscription, " +
	"or the end date you specified for returning the book is after your subscription expires."

type BorrowingHandler struct {
	cmds commands.BorrowingCommands
	q    queries.BorrowingQueries
}

func NewBorrowingHandler(cmds commands.BorrowingCommands, q queries.BorrowingQueries) *BorrowingHandler {
	reqdto.RegisterJSONFieldNames()
	return &BorrowingHandler{cmds: cmds, q: q}
}

// @Summary Create borrowing
// @Description Borrow a book unit after the subscription service confirms the borrowing period is covered
// @Tags borrowings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBorrowingRequest true "Create borrowing request"
// @Success 201 {object} resdto.BorrowingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/v1/borrowings [post]
func (h *BorrowingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail(err))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/v1/borrowings/%d", view.ID))
	c.JSON(http.StatusCreated, resdto.FromBorrowingView(view))
}

// @Summary Get borrowing
// @Description Get a borrowing by ID
// @Tags borrowings
// @Produce json
// @Param id path int true "Borrowing ID"
// @Success 200 {object} resdto.BorrowingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/borrowings/{id} [get]
func (h *BorrowingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowingView(view))
}

// @Summary List borrowings of a user
// @Description List all borrowings of a user, or only active / inactive ones
// @Tags borrowings
// @Produce json
// @Param userId query int true "User ID"
// @Param active query bool false "Filter on the active flag"
// @Success 200 {array} resdto.BorrowingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/borrowings [get]
func (h *BorrowingHandler) ListByUser(c *gin.Context) {
	var q reqdto.ListBorrowingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", httperr.ValidationDetail(err))
		return
	}

	var (
		views []*queries.BorrowingView
		err   error
	)
	switch {
	case q.Active == nil:
		views, err = h.q.ListByUser(c.Request.Context(), q.UserID)
	case *q.Active:
		views, err = h.q.ListActiveByUser(c.Request.Context(), q.UserID)
	default:
		views, err = h.q.ListInactiveByUser(c.Request.Context(), q.UserID)
	}
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowingViews(views))
}

// @Summary List borrowings of a book unit
// @Tags borrowings
// @Produce json
// @Param id path int true "Book unit ID"
// @Success 200 {array} resdto.BorrowingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/book-units/{id}/borrowings [get]
func (h *BorrowingHandler) ListByBookUnit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	views, err := h.q.ListByBookUnit(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowingViews(views))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.Newf("non-positive id %d", id)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		var detail any
		var verr *commands.ValidationError
		if errs.As(err, &verr) {
			detail = map[string]string{verr.Field: verr.Err.Error()}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
	case errs.Is(err, errs.ErrNotEligible):
		httperr.AbortWithError(c, http.StatusBadRequest, err, NotEligibleMessage, nil)
	case errs.Is(err, errs.ErrBorrowingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Borrowing not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
