//go:build wireinject
// +build wireinject

package di

import (
	"nox/config"
	"nox/infras/jwt"
	"nox/infras/kafka"
	"nox/infras/otel"
	"nox/infras/postgres"
	"nox/infras/redis"
	"nox/infras/s3"
	"nox/permissions"
	"nox/shared/cache"
	"nox/transport/http"
	"nox/transport/http/middleware"
	"nox/transport/http/router"

	artistRepository "nox/internal/domains/artist/repository"
	artistService "nox/internal/domains/artist/service"
	authService "nox/internal/domains/auth/service"
	clubRepository "nox/internal/domains/club/repository"
	clubService "nox/internal/domains/club/service"
	clubtableRepository "nox/internal/domains/clubtable/repository"
	clubtableService "nox/internal/domains/clubtable/service"
	eventRepository "nox/internal/domains/event/repository"
	eventService "nox/internal/domains/event/service"
	feedbackRepository "nox/internal/domains/feedback/repository"
	feedbackService "nox/internal/domains/feedback/service"
	invitationRepository "nox/internal/domains/invitation/repository"
	invitationService "nox/internal/domains/invitation/service"
	mediaService "nox/internal/domains/media/service"
	orderRepository "nox/internal/domains/order/repository"
	orderService "nox/internal/domains/order/service"
	postableRepository "nox/internal/domains/postable/repository"
	postableService "nox/internal/domains/postable/service"
	reservationRepository "nox/internal/domains/reservation/repository"
	reservationService "nox/internal/domains/reservation/service"
	ticketRepository "nox/internal/domains/ticket/repository"
	ticketService "nox/internal/domains/ticket/service"
	tickettypeRepository "nox/internal/domains/tickettype/repository"
	tickettypeService "nox/internal/domains/tickettype/service"
	transactionRepository "nox/internal/domains/transaction/repository"
	transactionService "nox/internal/domains/transaction/service"
	userRepository "nox/internal/domains/user/repository"
	userService "nox/internal/domains/user/service"

	artistHandler "nox/internal/handlers/artist"
	authHandler "nox/internal/handlers/auth"
	clubHandler "nox/internal/handlers/club"
	clubtableHandler "nox/internal/handlers/clubtable"
	eventHandler "nox/internal/handlers/event"
	feedbackHandler "nox/internal/handlers/feedback"
	invitationHandler "nox/internal/handlers/invitation"
	mediaHandler "nox/internal/handlers/media"
	orderHandler "nox/internal/handlers/order"
	postableHandler "nox/internal/handlers/postable"
	reservationHandler "nox/internal/handlers/reservation"
	ticketHandler "nox/internal/handlers/ticket"
	tickettypeHandler "nox/internal/handlers/tickettype"
	transactionHandler "nox/internal/handlers/transaction"
	userHandler "nox/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var artistDomain = wire.NewSet(
	artistRepository.New,
	artistService.New,
)

var clubDomain = wire.NewSet(
	clubRepository.New,
	clubService.New,
)

var clubTableDomain = wire.NewSet(
	clubtableRepository.New,
	clubtableService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var ticketTypeDomain = wire.NewSet(
	tickettypeRepository.New,
	tickettypeService.New,
)

var ticketDomain = wire.NewSet(
	ticketRepository.New,
	ticketService.New,
)

var posTableDomain = wire.NewSet(
	postableRepository.New,
	postableService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var transactionDomain = wire.NewSet(
	transactionRepository.New,
	transactionService.New,
)

var feedbackDomain = wire.NewSet(
	feedbackRepository.New,
	feedbackService.New,
)

var invitationDomain = wire.NewSet(
	invitationRepository.New,
	invitationService.New,
)

var mediaDomain = wire.NewSet(
	mediaService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	artistDomain,
	clubDomain,
	clubTableDomain,
	eventDomain,
	reservationDomain,
	ticketTypeDomain,
	ticketDomain,
	posTableDomain,
	orderDomain,
	transactionDomain,
	feedbackDomain,
	invitationDomain,
	mediaDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	artistHandler.New,
	clubHandler.New,
	clubtableHandler.New,
	eventHandler.New,
	reservationHandler.New,
	tickettypeHandler.New,
	ticketHandler.New,
	postableHandler.New,
	orderHandler.New,
	transactionHandler.New,
	feedbackHandler.New,
	invitationHandler.New,
	mediaHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
