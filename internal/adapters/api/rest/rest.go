package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/juvelir/workshop/docs"
	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
	"github.com/juvelir/workshop/internal/core/workshop"
	"github.com/juvelir/workshop/pkg/jwt"
)

var (
	cookieName = "token"
	cookieKey  = "UserID"
)

type workshopI interface {
	Register(ctx context.Context, username, password string, roleID uint) (model.User, error)
	Authorization(ctx context.Context, username, password string) (model.User, error)

	AddClient(ctx context.Context, client *model.Client) error
	UpdateClient(ctx context.Context, client *model.Client) error
	DeleteClient(ctx context.Context, clientID uint) error
	Clients() []model.Client
	ClientByID(ctx context.Context, clientID uint) (model.Client, error)
	RecalculateClientAggregate(ctx context.Context, clientID uint) (model.Client, error)

	AddOrder(ctx context.Context, order *model.Order) error
	UpdateOrder(ctx context.Context, order *model.Order) error
	DeleteOrder(ctx context.Context, orderID uint) error
	Orders() []model.Order
	OrdersByClient(clientID uint) []model.Order
	OrderByID(ctx context.Context, orderID uint) (model.Order, error)

	AddMaterial(ctx context.Context, material *model.Material) error
	UpdateMaterial(ctx context.Context, material *model.Material) error
	DeleteMaterial(ctx context.Context, materialID uint) error
	Materials() []model.Material

	AddProductType(ctx context.Context, productType *model.ProductType) error
	UpdateProductType(ctx context.Context, productType *model.ProductType) error
	DeleteProductType(ctx context.Context, typeID uint) error
	ProductTypes() []model.ProductType

	AddRole(ctx context.Context, role *model.Role) error
	DeleteRole(ctx context.Context, roleID uint) error
	Roles() []model.Role

	UpdateUser(ctx context.Context, user *model.User, password string) error
	DeleteUser(ctx context.Context, userID uint) error
	Users() []model.User
}

type Server struct {
	log     *zap.Logger
	engine  *gin.Engine
	service workshopI
	address string
	secret  []byte
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
	}
}

//	@title			Jewelry workshop back office
//	@version		1.0
//	@description	Order lifecycle and client aggregate service.
//	@host			localhost:8080
//	@BasePath		/

func New(service workshopI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
		s.GzipDecompress(),
	)

	api := s.engine.Group("/api")
	api.Use(s.GzipCompress())
	{
		api.POST("/auth/register", s.handlerRegister)
		api.POST("/auth/login", s.handlerLogin)

		authAPI := api.Group("/")
		authAPI.Use(s.Authentication())
		{
			authAPI.GET("/clients", s.handlerGetClients)
			authAPI.POST("/clients", s.handlerAddClient)
			authAPI.PUT("/clients/:id", s.handlerUpdateClient)
			authAPI.DELETE("/clients/:id", s.handlerDeleteClient)
			authAPI.GET("/clients/:id/orders", s.handlerGetClientOrders)
			authAPI.POST("/clients/:id/recalculate", s.handlerRecalculateClient)

			authAPI.GET("/orders", s.handlerGetOrders)
			authAPI.POST("/orders", s.handlerAddOrder)
			authAPI.GET("/orders/:id", s.handlerGetOrder)
			authAPI.PUT("/orders/:id", s.handlerUpdateOrder)
			authAPI.DELETE("/orders/:id", s.handlerDeleteOrder)

			authAPI.GET("/materials", s.handlerGetMaterials)
			authAPI.POST("/materials", s.handlerAddMaterial)
			authAPI.PUT("/materials/:id", s.handlerUpdateMaterial)
			authAPI.DELETE("/materials/:id", s.handlerDeleteMaterial)

			authAPI.GET("/product-types", s.handlerGetProductTypes)
			authAPI.POST("/product-types", s.handlerAddProductType)
			authAPI.PUT("/product-types/:id", s.handlerUpdateProductType)
			authAPI.DELETE("/product-types/:id", s.handlerDeleteProductType)

			authAPI.GET("/roles", s.handlerGetRoles)
			authAPI.POST("/roles", s.handlerAddRole)
			authAPI.DELETE("/roles/:id", s.handlerDeleteRole)

			authAPI.GET("/users", s.handlerGetUsers)
			authAPI.POST("/users", s.handlerAddUser)
			authAPI.PUT("/users/:id", s.handlerUpdateUser)
			authAPI.DELETE("/users/:id", s.handlerDeleteUser)
		}
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

var errUnauthorize = errors.New("unauthorized")

func (s *Server) checkAuth(c *gin.Context) (userID uint, err error) {
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, fmt.Errorf("failed read user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err := jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return 0, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}
	if !ok {
		return 0, fmt.Errorf("unverify user cookie: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't convert string userID to uint: %w", err)
	}

	return uint(userID64), nil
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) authorization(c *gin.Context, username, password string) error {
	ctx := c.Request.Context()
	user, err := s.service.Authorization(ctx, username, password)
	if err != nil {
		return fmt.Errorf("failed authorization: %w", err)
	}

	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(user.ID)))
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return nil
}

func (s *Server) readBody(c *gin.Context) ([]byte, int) {
	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		return []byte{}, http.StatusInternalServerError
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()
	return bBody, 0
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed parse id parameter: %w", err)
	}
	return uint(id64), nil
}

// writeError maps domain and store errors onto HTTP statuses.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case workshop.IsValidationError(err):
		c.Writer.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, errstore.ErrNotFoundData),
		errors.Is(err, errstore.ErrReferenceViolation):
		c.Writer.WriteHeader(http.StatusNotFound)
	case errors.Is(err, errstore.ErrClientHasOrders),
		errors.Is(err, errstore.ErrRoleInUse),
		errors.Is(err, errstore.ErrMaterialInUse),
		errors.Is(err, errstore.ErrProductTypeInUse),
		errors.Is(err, errstore.ErrNotUniqueData),
		errors.Is(err, errstore.ErrUsernameNotUnique):
		c.Writer.WriteHeader(http.StatusConflict)
	default:
		s.log.Error("request failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
	}
}
