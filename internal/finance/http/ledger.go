package http

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/aussiebroadwan/finance/internal/finance/aggregate"
	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/internal/finance/service"
	"github.com/aussiebroadwan/finance/pkg/financesdk"
	"github.com/aussiebroadwan/finance/pkg/httpx"
)

const maxBodyBytes = 1 << 20

// LedgerHandler serves the authenticated user's transactions and the views
// derived from them. Every read takes a fresh snapshot of the ledger.
type LedgerHandler struct {
	LedgerService *service.LedgerService
}

// HandleCreate godoc
//
//	@Summary		Add transaction
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		financesdk.TransactionRequest	true	"Transaction"
//	@Success		201		{object}	financesdk.CreatedResponse
//	@Failure		400		{object}	financesdk.ErrorResponse	"invalid_input"
//	@Failure		401		{object}	financesdk.ErrorResponse
//	@Failure		429		{object}	financesdk.ErrorResponse
//	@Router			/v1/transactions [post].
func (h *LedgerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	var req financesdk.TransactionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeInvalidRequest(w, "invalid JSON body")
		return
	}

	var date domain.Date
	if req.Date != "" {
		d, err := domain.ParseDate(req.Date)
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}
		date = d
	}

	id, err := h.LedgerService.AddTransaction(r.Context(), userID, service.NewTransaction{
		Date:        date,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, http.StatusUnauthorized, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, financesdk.CreatedResponse{ID: id})
}

// HandleList godoc
//
//	@Summary		List transactions
//	@Description	Rows matching the filter plus their total. Without start/end the full span of the ledger is used;
//	@Description	without category every category in range is included, while an empty category selects nothing.
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Param			start		query		string		false	"First day, YYYY-MM-DD"
//	@Param			end			query		string		false	"Last day, YYYY-MM-DD"
//	@Param			category	query		[]string	false	"Category to include, repeatable"	collectionFormat(multi)
//	@Success		200			{object}	financesdk.TransactionListResponse
//	@Failure		400			{object}	financesdk.ErrorResponse
//	@Failure		401			{object}	financesdk.ErrorResponse
//	@Router			/v1/transactions [get].
func (h *LedgerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.report(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, financesdk.TransactionListResponse{
		Criteria:     toCriteria(rep.Criteria),
		Transactions: toTransactions(rep.Transactions),
		Summary:      toSummary(rep.Summary),
	})
}

// HandleReport godoc
//
//	@Summary		Dashboard report
//	@Description	Filtered rows, summary metrics, the monthly series and the category breakdown in one response.
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Param			start		query		string		false	"First day, YYYY-MM-DD"
//	@Param			end			query		string		false	"Last day, YYYY-MM-DD"
//	@Param			category	query		[]string	false	"Category to include, repeatable"	collectionFormat(multi)
//	@Success		200			{object}	financesdk.ReportResponse
//	@Failure		400			{object}	financesdk.ErrorResponse
//	@Failure		401			{object}	financesdk.ErrorResponse
//	@Router			/v1/report [get].
func (h *LedgerHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.report(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, financesdk.ReportResponse{
		Criteria:     toCriteria(rep.Criteria),
		Transactions: toTransactions(rep.Transactions),
		Summary:      toSummary(rep.Summary),
		Monthly:      toMonthly(rep.Monthly),
		Breakdown:    toBreakdown(rep.Breakdown),
	})
}

func (h *LedgerHandler) report(w http.ResponseWriter, r *http.Request) (aggregate.Report, bool) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeInvalidInput(w, err.Error())
		return aggregate.Report{}, false
	}

	rep, err := h.LedgerService.Report(r.Context(), userID, criteria)
	if err != nil {
		writeServiceError(w, r, http.StatusUnauthorized, err)
		return aggregate.Report{}, false
	}
	return rep, true
}

// HandleReset godoc
//
//	@Summary		Reset ledger
//	@Description	Deletes every transaction of the authenticated user. Irreversible; resetting an empty ledger succeeds.
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	financesdk.ResetResponse
//	@Failure		401	{object}	financesdk.ErrorResponse
//	@Failure		429	{object}	financesdk.ErrorResponse
//	@Router			/v1/transactions [delete].
func (h *LedgerHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	n, err := h.LedgerService.ResetTransactions(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, http.StatusUnauthorized, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, financesdk.ResetResponse{Deleted: n})
}

// HandleExport godoc
//
//	@Summary		Export ledger as CSV
//	@Description	The whole unfiltered ledger with a date,amount,category,description header row.
//	@Tags			Ledger
//	@Produce		text/csv
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		401	{object}	financesdk.ErrorResponse
//	@Failure		429	{object}	financesdk.ErrorResponse
//	@Router			/v1/transactions/export [get].
func (h *LedgerHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	var buf bytes.Buffer
	if err := h.LedgerService.ExportCSV(r.Context(), userID, &buf); err != nil {
		writeServiceError(w, r, http.StatusUnauthorized, err)
		return
	}

	filename := httpx.UsernameFromContext(r.Context()) + "_finance_export.csv"

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// HandleCategories godoc
//
//	@Summary		Category suggestions
//	@Description	The built-in suggestions followed by any other categories already used in the ledger.
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	financesdk.CategoriesResponse
//	@Failure		401	{object}	financesdk.ErrorResponse
//	@Router			/v1/categories [get].
func (h *LedgerHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	cats, err := h.LedgerService.Categories(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, http.StatusUnauthorized, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, financesdk.CategoriesResponse{Categories: cats})
}
