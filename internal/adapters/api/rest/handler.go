package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
	"github.com/juvelir/workshop/internal/core/workshop"
)

var (
	msgErrorCloseBody = "failed close body request"
)

//	@Summary	Register user
//	@Schemes
//	@Description	registration of a back-office user
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		201	"user registered and authenticated"
//	@failure		400	"bad request format"
//	@failure		409	"username already taken"
//	@failure		500	"internal error"
//	@Router			/api/auth/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tRegistration{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := s.service.Register(ctx, jBody.Username, jBody.Password, jBody.RoleID); err != nil {
		if errors.Is(err, errstore.ErrUsernameNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if workshop.IsValidationError(err) || errors.Is(err, errstore.ErrReferenceViolation) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		s.log.Error("failed register user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := s.authorization(c, jBody.Username, jBody.Password); err != nil {
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusCreated)
}

//	@Summary	Login user
//	@Schemes
//	@Description	authorization
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200	"user authenticated"
//	@failure		400	"bad request format"
//	@failure		401	"wrong username/password pair"
//	@failure		500	"internal error"
//	@Router			/api/auth/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tAuthorization{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.authorization(c, jBody.Username, jBody.Password); err != nil {
		if errors.Is(err, workshop.ErrLoginNotValid) || errors.Is(err, workshop.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, workshop.ErrPasswordNotEqual) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	List clients
//	@Schemes
//	@Tags		client
//	@Produce	json
//	@Success	200	{array}	tClient	"clients with current aggregates"
//	@failure	401	"not authorized"
//	@Router		/api/clients [get]
func (s *Server) handlerGetClients(c *gin.Context) {
	clients := s.service.Clients()
	response := []tClient{}
	for _, client := range clients {
		response = append(response, newClient(client))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Add client
//	@Schemes
//	@Tags		client
//	@Accept		json
//	@Param		client	body	tClientRequest	true	"client"
//	@Produce	json
//	@Success	201	{object}	tClient
//	@failure	400	"missing required field"
//	@failure	401	"not authorized"
//	@failure	409	"phone already registered"
//	@failure	500	"internal error"
//	@Router		/api/clients [post]
func (s *Server) handlerAddClient(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}
	jBody := tClientRequest{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	client := model.Client{
		Phone:    jBody.Phone,
		FullName: jBody.FullName,
		Email:    jBody.Email,
	}
	if err := s.service.AddClient(ctx, &client); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newClient(client))
}

//	@Summary	Update client
//	@Schemes
//	@Tags		client
//	@Accept		json
//	@Param		id		path	integer			true	"client id"
//	@Param		client	body	tClientRequest	true	"client"
//	@Produce	json
//	@Success	200	{object}	tClient
//	@failure	400	"missing required field"
//	@failure	401	"not authorized"
//	@failure	404	"client not found"
//	@failure	500	"internal error"
//	@Router		/api/clients/{id} [put]
func (s *Server) handlerUpdateClient(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}
	jBody := tClientRequest{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	client := model.Client{
		ID:       id,
		Phone:    jBody.Phone,
		FullName: jBody.FullName,
		Email:    jBody.Email,
	}
	if err := s.service.UpdateClient(ctx, &client); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newClient(client))
}

//	@Summary	Delete client
//	@Schemes
//	@Tags		client
//	@Param		id	path	integer	true	"client id"
//	@Produce	plain
//	@Success	204	"client deleted"
//	@failure	401	"not authorized"
//	@failure	404	"client not found"
//	@failure	409	"client has orders"
//	@failure	500	"internal error"
//	@Router		/api/clients/{id} [delete]
func (s *Server) handlerDeleteClient(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteClient(ctx, id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Writer.WriteHeader(http.StatusNoContent)
}

//	@Summary	List client orders
//	@Schemes
//	@Tags		client
//	@Param		id	path	integer	true	"client id"
//	@Produce	json
//	@Success	200	{array}	tOrder
//	@failure	401	"not authorized"
//	@failure	404	"client not found"
//	@Router		/api/clients/{id}/orders [get]
func (s *Server) handlerGetClientOrders(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if _, err := s.service.ClientByID(ctx, id); err != nil {
		s.writeError(c, err)
		return
	}

	response := []tOrder{}
	for _, order := range s.service.OrdersByClient(id) {
		response = append(response, newOrder(order))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Recalculate client aggregate
//	@Schemes
//	@Description	recompute total purchases and discount from qualifying orders
//	@Tags			client
//	@Param			id	path	integer	true	"client id"
//	@Produce		json
//	@Success		200	{object}	tClient	"client with refreshed aggregate"
//	@failure		401	"not authorized"
//	@failure		404	"client not found"
//	@failure		500	"internal error"
//	@Router			/api/clients/{id}/recalculate [post]
func (s *Server) handlerRecalculateClient(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	client, err := s.service.RecalculateClientAggregate(ctx, id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newClient(client))
}

//	@Summary	List orders
//	@Schemes
//	@Tags		order
//	@Produce	json
//	@Success	200	{array}	tOrder
//	@failure	401	"not authorized"
//	@Router		/api/orders [get]
func (s *Server) handlerGetOrders(c *gin.Context) {
	response := []tOrder{}
	for _, order := range s.service.Orders() {
		response = append(response, newOrder(order))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Add order
//	@Schemes
//	@Description	create an order with its material lines; IN_PROCESS when no status given
//	@Tags			order
//	@Accept			json
//	@Param			order	body	tOrderRequest	true	"order"
//	@Produce		json
//	@Success		201	{object}	tOrder
//	@failure		400	"bad request format"
//	@failure		401	"not authorized"
//	@failure		404	"referenced client, product type or material not found"
//	@failure		500	"internal error"
//	@Router			/api/orders [post]
func (s *Server) handlerAddOrder(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}
	jBody := tOrderRequest{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	order, err := jBody.toModel()
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.AddOrder(ctx, &order); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrder(order))
}

//	@Summary	Get order
//	@Schemes
//	@Tags		order
//	@Param		id	path	integer	true	"order id"
//	@Produce	json
//	@Success	200	{object}	tOrder
//	@failure	401	"not authorized"
//	@failure	404	"order not found"
//	@Router		/api/orders/{id} [get]
func (s *Server) handlerGetOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	order, err := s.service.OrderByID(ctx, id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrder(order))
}

//	@Summary	Update order
//	@Schemes
//	@Description	overwrite order fields and replace its material lines
//	@Tags			order
//	@Accept			json
//	@Param			id		path	integer			true	"order id"
//	@Param			order	body	tOrderRequest	true	"order"
//	@Produce		json
//	@Success		200	{object}	tOrder
//	@failure		400	"bad request format"
//	@failure		401	"not authorized"
//	@failure		404	"order not found"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id} [put]
func (s *Server) handlerUpdateOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}
	jBody := tOrderRequest{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	order, err := jBody.toModel()
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	order.ID = id

	if err := s.service.UpdateOrder(ctx, &order); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrder(order))
}

//	@Summary	Delete order
//	@Schemes
//	@Tags		order
//	@Param		id	path	integer	true	"order id"
//	@Produce	plain
//	@Success	204	"order and its lines deleted"
//	@failure	401	"not authorized"
//	@failure	404	"order not found"
//	@failure	500	"internal error"
//	@Router		/api/orders/{id} [delete]
func (s *Server) handlerDeleteOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteOrder(ctx, id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Writer.WriteHeader(http.StatusNoContent)
}
