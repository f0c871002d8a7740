package transaction

import (
	"net/http"

	"nox/infras/otel"
	"nox/internal/domains/transaction/model"
	"nox/internal/domains/transaction/model/dto"
	"nox/internal/domains/transaction/service"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/validator"
	"nox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Transaction
	otel    otel.Otel
}

func New(service service.Transaction, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transactions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTransaction)
		routerGroup.Get("/", handler.GetTransactions)
		routerGroup.Get("/{id}", handler.GetTransactionByID)
		routerGroup.Post("/{id}/settle", handler.SettleTransaction)
	})
}

// CreateTransaction appends a pending row to the ledger.
// @Summary Create a transaction
// @Description Append a pending transaction to the ledger. Ledger rows are never edited or deleted.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} response.Data[dto.TransactionResponse] "Transaction created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [post]
// @Security BearerAuth
func (handler *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTransaction")
	defer scope.End()

	req := dto.CreateTransactionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	transaction, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction created successfully")

	response.WithJSON(w, http.StatusCreated, transaction)
}

// GetTransactions retrieves all transactions based on query parameters.
// @Summary Get all transactions
// @Description Retrieve all ledger rows with optional filtering and pagination.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by user"
// @Param order_id query string false "Filter by order"
// @Param ticket_id query string false "Filter by ticket"
// @Param type query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetTransactionsResponse] "List of transactions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldUserID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldOrderID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldOrderID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTicketID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldTicketID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldType),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
		},
	}

	transactions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}

// GetTransactionByID retrieves a transaction by its ID.
// @Summary Get a transaction by ID
// @Description Retrieve a single ledger row by its unique identifier.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.Data[dto.TransactionResponse] "Transaction details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	transaction, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transaction by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction retrieved successfully")

	response.WithJSON(w, http.StatusOK, transaction)
}

// SettleTransaction resolves a pending transaction to completed or failed.
// @Summary Settle a transaction
// @Description Move a pending transaction to completed or failed. Fails with 409 if already settled.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.SettleTransactionRequest true "Settle Transaction Request"
// @Success 200 {object} response.Message "Transaction settled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id}/settle [post]
// @Security BearerAuth
func (handler *Handler) SettleTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SettleTransaction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SettleTransactionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Settle(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to settle transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction settled successfully")

	response.WithMessage(w, http.StatusOK, "Transaction settled successfully")
}
