package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "smartincident/internal/application/auth/usecases"
	companyUsecases "smartincident/internal/application/company/usecases"
	dashboardUsecases "smartincident/internal/application/dashboard/usecases"
	incidentUsecases "smartincident/internal/application/incident/usecases"
	settingsUsecases "smartincident/internal/application/settings/usecases"
	tickettypeUsecases "smartincident/internal/application/tickettype/usecases"
	userUsecases "smartincident/internal/application/user/usecases"
	"smartincident/internal/domain/company"
	"smartincident/internal/domain/incident"
	"smartincident/internal/domain/notification"
	"smartincident/internal/domain/tickettype"
	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/auth"
	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/infrastructure/config"
	"smartincident/internal/infrastructure/email"
	infraNotification "smartincident/internal/infrastructure/notification"
	"smartincident/internal/infrastructure/ratelimit"
	"smartincident/internal/infrastructure/repository"
	"smartincident/internal/infrastructure/storage"
	"smartincident/internal/interfaces/http/handlers"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/db"
	"smartincident/internal/shared/logger"
)

// Container wires repositories, use cases, handlers and background workers
// together and owns their lifecycles.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *ratelimit.LoginLimiter

	dispatcher       *infraNotification.Dispatcher
	dispatcherCancel context.CancelFunc
}

// repositories holds all repository instances. Types match the interfaces
// the use cases consume.
type repositories struct {
	userRepo       user.Repository
	companyRepo    company.Repository
	incidentRepo   incident.Repository
	commentRepo    incident.CommentRepository
	attachmentRepo incident.AttachmentRepository
	typeRepo       tickettype.Repository
	configRepo     notification.ConfigRepository
}

type allUseCases struct {
	// Auth
	login          *authUsecases.LoginUseCase
	forgotPassword *authUsecases.ForgotPasswordUseCase
	resetPassword  *authUsecases.ResetPasswordUseCase

	// Company
	createCompany *companyUsecases.CreateCompanyUseCase
	updateCompany *companyUsecases.UpdateCompanyUseCase
	deleteCompany *companyUsecases.DeleteCompanyUseCase
	getCompany    *companyUsecases.GetCompanyUseCase
	listCompanies *companyUsecases.ListCompaniesUseCase

	// User
	createUser *userUsecases.CreateUserUseCase
	updateUser *userUsecases.UpdateUserUseCase
	deleteUser *userUsecases.DeleteUserUseCase
	getUser    *userUsecases.GetUserUseCase
	listUsers  *userUsecases.ListUsersUseCase

	// Incident
	createIncident *incidentUsecases.CreateIncidentUseCase
	updateIncident *incidentUsecases.UpdateIncidentUseCase
	deleteIncident *incidentUsecases.DeleteIncidentUseCase
	getIncident    *incidentUsecases.GetIncidentUseCase
	listIncidents  *incidentUsecases.ListIncidentsUseCase
	addComment     *incidentUsecases.AddCommentUseCase
	listComments   *incidentUsecases.ListCommentsUseCase

	// Ticket type
	createTicketType *tickettypeUsecases.CreateTicketTypeUseCase
	updateTicketType *tickettypeUsecases.UpdateTicketTypeUseCase
	deleteTicketType *tickettypeUsecases.DeleteTicketTypeUseCase
	getTicketType    *tickettypeUsecases.GetTicketTypeUseCase
	listTicketTypes  *tickettypeUsecases.ListTicketTypesUseCase

	// Dashboard & settings
	getDashboard   *dashboardUsecases.GetDashboardUseCase
	getSettings    *settingsUsecases.GetSettingsUseCase
	updateSettings *settingsUsecases.UpdateSettingsUseCase
	sendTestEmail  *settingsUsecases.SendTestEmailUseCase
}

type allHandlers struct {
	authHandler       *handlers.AuthHandler
	companyHandler    *handlers.CompanyHandler
	userHandler       *handlers.UserHandler
	incidentHandler   *handlers.IncidentHandler
	ticketTypeHandler *handlers.TicketTypeHandler
	dashboardHandler  *handlers.DashboardHandler
	settingsHandler   *handlers.SettingsHandler
	uploadHandler     *handlers.UploadHandler
}

// NewContainer wires the whole application. The dispatcher worker is started
// here and stopped by Shutdown.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	c.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	c.initRepositories()

	fileStore, err := storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPrefix)
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}

	c.dispatcher = infraNotification.NewDispatcher(cfg.Notification.QueueSize, log)
	dispatchCtx, cancel := context.WithCancel(context.Background())
	c.dispatcherCancel = cancel
	c.dispatcher.Start(dispatchCtx)

	mailer := email.NewSMTPSender(c.repos.configRepo, cfg.Server.BaseURL)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpDays)
	txManager := db.NewTransactionManager(database)
	cascader := cascade.NewEngine(database, log)

	c.loginLimiter = ratelimit.NewLoginLimiter(
		c.redis,
		cfg.RateLimit.LoginLimit,
		time.Duration(cfg.RateLimit.LoginWindowSeconds)*time.Second,
	)

	c.initUseCases(fileStore, mailer, hasher, jwtService, txManager, cascader)
	c.initHandlers(fileStore)

	c.authMiddleware = middleware.NewAuthMiddleware(jwtService, c.repos.userRepo, log)

	return c, nil
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:       repository.NewUserRepository(c.db),
		companyRepo:    repository.NewCompanyRepository(c.db),
		incidentRepo:   repository.NewIncidentRepository(c.db),
		commentRepo:    repository.NewCommentRepository(c.db),
		attachmentRepo: repository.NewAttachmentRepository(c.db),
		typeRepo:       repository.NewTicketTypeRepository(c.db),
		configRepo:     repository.NewNotificationConfigRepository(c.db),
	}
}

func (c *Container) initUseCases(
	fileStore *storage.LocalStorage,
	mailer *email.SMTPSender,
	hasher *auth.BcryptPasswordHasher,
	jwtService *auth.JWTService,
	txManager *db.TransactionManager,
	cascader *cascade.Engine,
) {
	r := c.repos
	log := c.log

	c.ucs = &allUseCases{
		login:          authUsecases.NewLoginUseCase(r.userRepo, hasher, jwtService, log),
		forgotPassword: authUsecases.NewForgotPasswordUseCase(r.userRepo, auth.GenerateResetToken, mailer, c.dispatcher, log),
		resetPassword:  authUsecases.NewResetPasswordUseCase(r.userRepo, hasher, log),

		createCompany: companyUsecases.NewCreateCompanyUseCase(r.companyRepo, log),
		updateCompany: companyUsecases.NewUpdateCompanyUseCase(r.companyRepo, r.userRepo, txManager, log),
		deleteCompany: companyUsecases.NewDeleteCompanyUseCase(r.companyRepo, cascader, log),
		getCompany:    companyUsecases.NewGetCompanyUseCase(r.companyRepo, log),
		listCompanies: companyUsecases.NewListCompaniesUseCase(r.companyRepo, log),

		createUser: userUsecases.NewCreateUserUseCase(r.userRepo, r.companyRepo, hasher, mailer, c.dispatcher, log),
		updateUser: userUsecases.NewUpdateUserUseCase(r.userRepo, r.companyRepo, hasher, log),
		deleteUser: userUsecases.NewDeleteUserUseCase(r.userRepo, cascader, log),
		getUser:    userUsecases.NewGetUserUseCase(r.userRepo, log),
		listUsers:  userUsecases.NewListUsersUseCase(r.userRepo, log),

		createIncident: incidentUsecases.NewCreateIncidentUseCase(r.incidentRepo, r.attachmentRepo, r.typeRepo, r.userRepo, fileStore, mailer, c.dispatcher, log),
		updateIncident: incidentUsecases.NewUpdateIncidentUseCase(r.incidentRepo, r.userRepo, log),
		deleteIncident: incidentUsecases.NewDeleteIncidentUseCase(r.incidentRepo, cascader, log),
		getIncident:    incidentUsecases.NewGetIncidentUseCase(r.incidentRepo, r.commentRepo, r.attachmentRepo, log),
		listIncidents:  incidentUsecases.NewListIncidentsUseCase(r.incidentRepo, r.userRepo, r.companyRepo, log),
		addComment:     incidentUsecases.NewAddCommentUseCase(r.incidentRepo, r.commentRepo, r.attachmentRepo, r.userRepo, fileStore, mailer, c.dispatcher, log),
		listComments:   incidentUsecases.NewListCommentsUseCase(r.incidentRepo, r.commentRepo, r.attachmentRepo, log),

		createTicketType: tickettypeUsecases.NewCreateTicketTypeUseCase(r.typeRepo, log),
		updateTicketType: tickettypeUsecases.NewUpdateTicketTypeUseCase(r.typeRepo, log),
		deleteTicketType: tickettypeUsecases.NewDeleteTicketTypeUseCase(r.typeRepo, r.incidentRepo, cascader, log),
		getTicketType:    tickettypeUsecases.NewGetTicketTypeUseCase(r.typeRepo, log),
		listTicketTypes:  tickettypeUsecases.NewListTicketTypesUseCase(r.typeRepo, log),

		getDashboard:   dashboardUsecases.NewGetDashboardUseCase(r.incidentRepo, log),
		getSettings:    settingsUsecases.NewGetSettingsUseCase(r.configRepo, log),
		updateSettings: settingsUsecases.NewUpdateSettingsUseCase(r.configRepo, log),
		sendTestEmail:  settingsUsecases.NewSendTestEmailUseCase(mailer, log),
	}
}

func (c *Container) initHandlers(fileStore *storage.LocalStorage) {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		authHandler:       handlers.NewAuthHandler(u.login, u.forgotPassword, u.resetPassword, log),
		companyHandler:    handlers.NewCompanyHandler(u.createCompany, u.updateCompany, u.deleteCompany, u.getCompany, u.listCompanies, log),
		userHandler:       handlers.NewUserHandler(u.createUser, u.updateUser, u.deleteUser, u.getUser, u.listUsers, log),
		incidentHandler:   handlers.NewIncidentHandler(u.createIncident, u.updateIncident, u.deleteIncident, u.getIncident, u.listIncidents, u.addComment, u.listComments, log),
		ticketTypeHandler: handlers.NewTicketTypeHandler(u.createTicketType, u.updateTicketType, u.deleteTicketType, u.getTicketType, u.listTicketTypes, log),
		dashboardHandler:  handlers.NewDashboardHandler(u.getDashboard, log),
		settingsHandler:   handlers.NewSettingsHandler(u.getSettings, u.updateSettings, u.sendTestEmail, log),
		uploadHandler:     handlers.NewUploadHandler(fileStore, log),
	}
}

// Engine exposes the configured gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops the background worker and closes the redis connection.
func (c *Container) Shutdown() {
	if c.dispatcherCancel != nil {
		c.dispatcherCancel()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("redis close failed", "error", err)
		}
	}
}
