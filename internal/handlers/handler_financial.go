package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/utils/pagination"
)

// financialHandler handles HTTP requests for the financeiro module.
type financialHandler struct {
	financialService portssvc.FinancialSvcFacade
}

func newFinancialHandler(fs portssvc.FinancialSvcFacade) *financialHandler {
	return &financialHandler{financialService: fs}
}

// registerFinancialRoutes registers the financeiro module routes.
func registerFinancialRoutes(rg *gin.RouterGroup, financialService portssvc.FinancialSvcFacade) {
	h := newFinancialHandler(financialService)

	financeiro := rg.Group("/financeiro")
	{
		financeiro.GET("/transacoes", h.listTransactions)
		financeiro.POST("/transacoes", h.createTransaction)
		financeiro.GET("/categorias", h.listCategories)
		financeiro.POST("/categorias", h.createCategory)
	}
}

// createTransaction godoc
// @Summary Record a financial transaction
// @Tags financial
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/financeiro/transacoes [post]
func (h *financialHandler) createTransaction(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.financialService.CreateTransaction(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List financial transactions
// @Description Pages the ledger newest first with a keyset cursor token.
// @Tags financial
// @Produce json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Cursor from the previous page"
// @Param type query string false "entrada or saida"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/financeiro/transacoes [get]
func (h *financialHandler) listTransactions(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portsrepo.TransactionListFilter{Limit: params.Limit}
	if params.NextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination token"})
			return
		}
		filter.CursorDate = &cursorDate
		filter.CursorCreatedAt = &cursorCreatedAt
	}
	if params.Type != "" {
		txnType := domain.TransactionType(params.Type)
		filter.Type = &txnType
	}
	if params.FromDate != "" {
		from, err := time.Parse(dto.DateLayout, params.FromDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid fromDate"})
			return
		}
		filter.FromDate = &from
	}
	if params.ToDate != "" {
		to, err := time.Parse(dto.DateLayout, params.ToDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid toDate"})
			return
		}
		filter.ToDate = &to
	}

	txns, nextToken, err := h.financialService.ListTransactions(c.Request.Context(), churchID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}

// createCategory godoc
// @Summary Create a transaction category
// @Tags financial
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/financeiro/categorias [post]
func (h *financialHandler) createCategory(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	category, err := h.financialService.CreateCategory(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List transaction categories
// @Tags financial
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /churches/{slug}/financeiro/categorias [get]
func (h *financialHandler) listCategories(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	categories, err := h.financialService.ListCategories(c.Request.Context(), churchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}
