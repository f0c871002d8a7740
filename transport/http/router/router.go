package router

import (
	"nox/internal/handlers/artist"
	"nox/internal/handlers/auth"
	"nox/internal/handlers/club"
	"nox/internal/handlers/clubtable"
	"nox/internal/handlers/event"
	"nox/internal/handlers/feedback"
	"nox/internal/handlers/invitation"
	"nox/internal/handlers/media"
	"nox/internal/handlers/order"
	"nox/internal/handlers/postable"
	"nox/internal/handlers/reservation"
	"nox/internal/handlers/ticket"
	"nox/internal/handlers/tickettype"
	"nox/internal/handlers/transaction"
	"nox/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Artist      artist.Handler
	Club        club.Handler
	ClubTable   clubtable.Handler
	Event       event.Handler
	Reservation reservation.Handler
	TicketType  tickettype.Handler
	Ticket      ticket.Handler
	PosTable    postable.Handler
	Order       order.Handler
	Transaction transaction.Handler
	Feedback    feedback.Handler
	Invitation  invitation.Handler
	Media       media.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Artist.Router(routerGroup)
		r.DomainHandlers.Club.Router(routerGroup)
		r.DomainHandlers.ClubTable.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.TicketType.Router(routerGroup)
		r.DomainHandlers.Ticket.Router(routerGroup)
		r.DomainHandlers.PosTable.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Transaction.Router(routerGroup)
		r.DomainHandlers.Feedback.Router(routerGroup)
		r.DomainHandlers.Invitation.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
