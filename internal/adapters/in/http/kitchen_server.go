package http

import (
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kitchen"

	"github.com/labstack/echo/v4"
)

type (
	ticketRequest struct {
		TicketID string `json:"ticketId" validate:"required,uuid"`
	}

	ticketCookRequest struct {
		TicketID string `json:"ticketId" validate:"required,uuid"`
		CookID   string `json:"cookId"`
	}

	ticketItemsRequest struct {
		TicketID string   `json:"ticketId" validate:"required,uuid"`
		ItemIDs  []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
	}

	startItemsRequest struct {
		TicketID string   `json:"ticketId" validate:"required,uuid"`
		ItemIDs  []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
		CookID   string   `json:"cookId"`
	}

	ticketItemsReasonRequest struct {
		TicketID string   `json:"ticketId" validate:"required,uuid"`
		ItemIDs  []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
		Reason   string   `json:"reason"`
	}

	cancelTicketRequest struct {
		TicketID string `json:"ticketId" validate:"required,uuid"`
		Reason   string `json:"reason"`
	}

	updatePriorityRequest struct {
		TicketID string `json:"ticketId" validate:"required,uuid"`
		Priority *int   `json:"priority" validate:"required"`
	}

	toggleTimerRequest struct {
		TicketID string `json:"ticketId" validate:"required,uuid"`
		Pause    *bool  `json:"pause" validate:"required"`
	}

	reassignTicketRequest struct {
		TicketID string `json:"ticketId" validate:"required,uuid"`
		CookID   string `json:"cookId" validate:"required"`
	}

	displayRequest struct {
		TenantID string `json:"tenantId" validate:"required"`
		Station  string `json:"station"`
	}

	getTicketsRequest struct {
		TenantID string   `json:"tenantId" validate:"required"`
		Statuses []string `json:"statuses"`
		Station  string   `json:"station"`
		OrderID  string   `json:"orderId" validate:"omitempty,uuid"`
		Limit    int      `json:"limit" validate:"gte=0"`
		Offset   int      `json:"offset" validate:"gte=0"`
	}

	statsRequest struct {
		TenantID string     `json:"tenantId" validate:"required"`
		Since    *time.Time `json:"since"`
	}
)

// KitchenHandlers are the use cases behind the kitchen:* patterns.
type KitchenHandlers struct {
	StartTicket    UseCase[commands.StartTicketCommand, *kitchen.Ticket]
	StartItems     UseCase[commands.StartItemsCommand, *kitchen.Ticket]
	MarkItemsReady UseCase[commands.MarkItemsReadyCommand, *kitchen.Ticket]
	BumpTicket     UseCase[commands.BumpTicketCommand, *kitchen.Ticket]
	RecallItems    UseCase[commands.RecallItemsCommand, *kitchen.Ticket]
	CancelItems    UseCase[commands.CancelItemsCommand, *kitchen.Ticket]
	CancelTicket   UseCase[commands.CancelTicketCommand, *kitchen.Ticket]
	UpdatePriority UseCase[commands.UpdatePriorityCommand, *kitchen.Ticket]
	ToggleTimer    UseCase[commands.ToggleTimerCommand, *kitchen.Ticket]
	ReassignTicket UseCase[commands.ReassignTicketCommand, *kitchen.Ticket]
	GetDisplay     UseCase[queries.GetKitchenDisplayQuery, []queries.TicketResponse]
	GetTickets     UseCase[queries.GetTicketsQuery, []queries.TicketResponse]
	GetStats       UseCase[queries.GetKitchenStatsQuery, queries.KitchenStatsResponse]

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewKitchenRouter serves the kitchen service patterns.
func NewKitchenRouter(h KitchenHandlers, logger *slog.Logger) *Router {
	if h.Now == nil {
		h.Now = time.Now
	}
	return newRouter("kitchen", kitchenErrors, map[string]Pattern{
		"kitchen:get-display":      getDisplay(h.GetDisplay),
		"kitchen:get-tickets":      getTickets(h.GetTickets),
		"kitchen:get-stats":        getStats(h.GetStats, h.Now),
		"kitchen:start-ticket":     startTicket(h.StartTicket, h.Now),
		"kitchen:start-items":      startItems(h.StartItems, h.Now),
		"kitchen:mark-items-ready": markItemsReady(h.MarkItemsReady, h.Now),
		"kitchen:bump-ticket":      bumpTicket(h.BumpTicket, h.Now),
		"kitchen:recall-items":     recallItems(h.RecallItems, h.Now),
		"kitchen:cancel-items":     cancelItems(h.CancelItems, h.Now),
		"kitchen:cancel-ticket":    cancelTicket(h.CancelTicket, h.Now),
		"kitchen:update-priority":  updatePriority(h.UpdatePriority, h.Now),
		"kitchen:toggle-timer":     toggleTimer(h.ToggleTimer, h.Now),
		"kitchen:reassign-ticket":  reassignTicket(h.ReassignTicket, h.Now),
	}, logger)
}

func runTicket[C any](c echo.Context, uc UseCase[C, *kitchen.Ticket], cmd C, now func() time.Time) (any, error) {
	t, err := uc.Handle(c.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}
	return queries.TicketResponseFromDomain(t, now()), nil
}

func startTicket(uc UseCase[commands.StartTicketCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[ticketCookRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, err := parseID("ticketId", req.TicketID)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewStartTicketCommand(ticketID, req.CookID)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func startItems(uc UseCase[commands.StartItemsCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[startItemsRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, itemIDs, err := parseIDs(req.TicketID, "ticketId", req.ItemIDs)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewStartItemsCommand(ticketID, itemIDs, req.CookID)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func markItemsReady(uc UseCase[commands.MarkItemsReadyCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[ticketItemsRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, itemIDs, err := parseIDs(req.TicketID, "ticketId", req.ItemIDs)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewMarkItemsReadyCommand(ticketID, itemIDs)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func bumpTicket(uc UseCase[commands.BumpTicketCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[ticketRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, err := parseID("ticketId", req.TicketID)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewBumpTicketCommand(ticketID)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func recallItems(uc UseCase[commands.RecallItemsCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[ticketItemsReasonRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, itemIDs, err := parseIDs(req.TicketID, "ticketId", req.ItemIDs)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewRecallItemsCommand(ticketID, itemIDs, req.Reason)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func cancelItems(uc UseCase[commands.CancelItemsCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[ticketItemsReasonRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, itemIDs, err := parseIDs(req.TicketID, "ticketId", req.ItemIDs)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewCancelItemsCommand(ticketID, itemIDs, req.Reason)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func cancelTicket(uc UseCase[commands.CancelTicketCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[cancelTicketRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, err := parseID("ticketId", req.TicketID)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewCancelTicketCommand(ticketID, req.Reason)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func updatePriority(uc UseCase[commands.UpdatePriorityCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[updatePriorityRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, err := parseID("ticketId", req.TicketID)
		if err != nil {
			return nil, err
		}
		priority, err := kitchen.NewPriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewUpdatePriorityCommand(ticketID, priority)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func toggleTimer(uc UseCase[commands.ToggleTimerCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[toggleTimerRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, err := parseID("ticketId", req.TicketID)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewToggleTimerCommand(ticketID, *req.Pause)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func reassignTicket(uc UseCase[commands.ReassignTicketCommand, *kitchen.Ticket], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[reassignTicketRequest](c)
		if err != nil {
			return nil, err
		}
		ticketID, err := parseID("ticketId", req.TicketID)
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewReassignTicketCommand(ticketID, req.CookID)
		if err != nil {
			return nil, err
		}
		return runTicket(c, uc, cmd, now)
	}
}

func getDisplay(uc UseCase[queries.GetKitchenDisplayQuery, []queries.TicketResponse]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[displayRequest](c)
		if err != nil {
			return nil, err
		}
		query, err := queries.NewGetKitchenDisplayQuery(req.TenantID, req.Station)
		if err != nil {
			return nil, err
		}
		return uc.Handle(c.Request().Context(), query)
	}
}

func getTickets(uc UseCase[queries.GetTicketsQuery, []queries.TicketResponse]) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[getTicketsRequest](c)
		if err != nil {
			return nil, err
		}

		filter := queries.TicketFilter{
			TenantID: req.TenantID,
			Station:  req.Station,
			OrderID:  req.OrderID,
			Limit:    req.Limit,
			Offset:   req.Offset,
		}
		for _, s := range req.Statuses {
			status, err := kitchen.ParseTicketStatus(s)
			if err != nil {
				return nil, err
			}
			filter.Statuses = append(filter.Statuses, status)
		}

		query, err := queries.NewGetTicketsQuery(filter)
		if err != nil {
			return nil, err
		}
		return uc.Handle(c.Request().Context(), query)
	}
}

// getStats covers the current UTC day unless the request names a start.
func getStats(uc UseCase[queries.GetKitchenStatsQuery, queries.KitchenStatsResponse], now func() time.Time) Pattern {
	return func(c echo.Context) (any, error) {
		req, err := bind[statsRequest](c)
		if err != nil {
			return nil, err
		}

		since := now().UTC().Truncate(24 * time.Hour)
		if req.Since != nil {
			since = *req.Since
		}

		query, err := queries.NewGetKitchenStatsQuery(req.TenantID, since)
		if err != nil {
			return nil, err
		}
		return uc.Handle(c.Request().Context(), query)
	}
}
