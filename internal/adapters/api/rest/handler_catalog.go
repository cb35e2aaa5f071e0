package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

//	@Summary	List materials
//	@Schemes
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	tMaterial
//	@failure	401	"not authorized"
//	@Router		/api/materials [get]
func (s *Server) handlerGetMaterials(c *gin.Context) {
	response := []tMaterial{}
	for _, material := range s.service.Materials() {
		response = append(response, tMaterial{
			ID:          material.ID,
			Name:        material.Name,
			CostPerGram: material.CostPerGram,
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Add material
//	@Schemes
//	@Tags		catalog
//	@Accept		json
//	@Param		material	body	tMaterial	true	"material"
//	@Produce	json
//	@Success	201	{object}	tMaterial
//	@failure	400	"missing required field"
//	@failure	401	"not authorized"
//	@failure	500	"internal error"
//	@Router		/api/materials [post]
func (s *Server) handlerAddMaterial(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}
	jBody := tMaterial{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	material := model.Material{
		Name:        jBody.Name,
		CostPerGram: jBody.CostPerGram,
	}
	if err := s.service.AddMaterial(ctx, &material); err != nil {
		s.writeError(c, err)
		return
	}
	jBody.ID = material.ID
	c.JSON(http.StatusCreated, jBody)
}

//	@Summary	Update material
//	@Schemes
//	@Tags		catalog
//	@Accept		json
//	@Param		id			path	integer		true	"material id"
//	@Param		material	body	tMaterial	true	"material"
//	@Produce	json
//	@Success	200	{object}	tMaterial
//	@failure	400	"missing required field"
//	@failure	401	"not authorized"
//	@failure	404	"material not found"
//	@failure	500	"internal error"
//	@Router		/api/materials/{id} [put]
func (s *Server) handlerUpdateMaterial(c *gin.Context) {
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
	jBody := tMaterial{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	material := model.Material{
		ID:          id,
		Name:        jBody.Name,
		CostPerGram: jBody.CostPerGram,
	}
	if err := s.service.UpdateMaterial(ctx, &material); err != nil {
		s.writeError(c, err)
		return
	}
	jBody.ID = id
	c.JSON(http.StatusOK, jBody)
}

//	@Summary	Delete material
//	@Schemes
//	@Tags		catalog
//	@Param		id	path	integer	true	"material id"
//	@Produce	plain
//	@Success	204	"material deleted"
//	@failure	401	"not authorized"
//	@failure	404	"material not found"
//	@failure	409	"material used by order lines"
//	@failure	500	"internal error"
//	@Router		/api/materials/{id} [delete]
func (s *Server) handlerDeleteMaterial(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteMaterial(ctx, id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Writer.WriteHeader(http.StatusNoContent)
}

//	@Summary	List product types
//	@Schemes
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	tProductType
//	@failure	401	"not authorized"
//	@Router		/api/product-types [get]
func (s *Server) handlerGetProductTypes(c *gin.Context) {
	response := []tProductType{}
	for _, productType := range s.service.ProductTypes() {
		response = append(response, tProductType{
			ID:        productType.ID,
			Name:      productType.Name,
			LaborCost: productType.LaborCost,
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Add product type
//	@Schemes
//	@Tags		catalog
//	@Accept		json
//	@Param		productType	body	tProductType	true	"product type"
//	@Produce	json
//	@Success	201	{object}	tProductType
//	@failure	400	"missing required field"
//	@failure	401	"not authorized"
//	@failure	500	"internal error"
//	@Router		/api/product-types [post]
func (s *Server) handlerAddProductType(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}
	jBody := tProductType{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	productType := model.ProductType{
		Name:      jBody.Name,
		LaborCost: jBody.LaborCost,
	}
	if err := s.service.AddProductType(ctx, &productType); err != nil {
		s.writeError(c, err)
		return
	}
	jBody.ID = productType.ID
	c.JSON(http.StatusCreated, jBody)
}

//	@Summary	Update product type
//	@Schemes
//	@Tags		catalog
//	@Accept		json
//	@Param		id			path	integer			true	"product type id"
//	@Param		productType	body	tProductType	true	"product type"
//	@Produce	json
//	@Success	200	{object}	tProductType
//	@failure	400	"missing required field"
//	@failure	401	"not authorized"
//	@failure	404	"product type not found"
//	@failure	500	"internal error"
//	@Router		/api/product-types/{id} [put]
func (s *Server) handlerUpdateProductType(c *gin.Context) {
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
	jBody := tProductType{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	productType := model.ProductType{
		ID:        id,
		Name:      jBody.Name,
		LaborCost: jBody.LaborCost,
	}
	if err := s.service.UpdateProductType(ctx, &productType); err != nil {
		s.writeError(c, err)
		return
	}
	jBody.ID = id
	c.JSON(http.StatusOK, jBody)
}

//	@Summary	Delete product type
//	@Schemes
//	@Tags		catalog
//	@Param		id	path	integer	true	"product type id"
//	@Produce	plain
//	@Success	204	"product type deleted"
//	@failure	401	"not authorized"
//	@failure	404	"product type not found"
//	@failure	409	"product type used by orders"
//	@failure	500	"internal error"
//	@Router		/api/product-types/{id} [delete]
func (s *Server) handlerDeleteProductType(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteProductType(ctx, id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Writer.WriteHeader(http.StatusNoContent)
}

//	@Summary	List roles
//	@Schemes
//	@Tags		user
//	@Produce	json
//	@Success	200	{array}	tRole
//	@failure	401	"not authorized"
//	@Router		/api/roles [get]
func (s *Server) handlerGetRoles(c *gin.Context) {
	response := []tRole{}
	for _, role := range s.service.Roles() {
		response = append(response, tRole{ID: role.ID, Name: role.Name})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Add role
//	@Schemes
//	@Tags		user
//	@Accept		json
//	@Param		role	body	tRole	true	"role"
//	@Produce	json
//	@Success	201	{object}	tRole
//	@failure	400	"missing required field"
//	@failure	401	"not authorized"
//	@failure	409	"role name already exists"
//	@failure	500	"internal error"
//	@Router		/api/roles [post]
func (s *Server) handlerAddRole(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}
	jBody := tRole{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	role := model.Role{Name: jBody.Name}
	if err := s.service.AddRole(ctx, &role); err != nil {
		s.writeError(c, err)
		return
	}
	jBody.ID = role.ID
	c.JSON(http.StatusCreated, jBody)
}

//	@Summary	Delete role
//	@Schemes
//	@Tags		user
//	@Param		id	path	integer	true	"role id"
//	@Produce	plain
//	@Success	204	"role deleted"
//	@failure	401	"not authorized"
//	@failure	404	"role not found"
//	@failure	409	"role assigned to users"
//	@failure	500	"internal error"
//	@Router		/api/roles/{id} [delete]
func (s *Server) handlerDeleteRole(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteRole(ctx, id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Writer.WriteHeader(http.StatusNoContent)
}

//	@Summary	List users
//	@Schemes
//	@Tags		user
//	@Produce	json
//	@Success	200	{array}	tUser
//	@failure	401	"not authorized"
//	@Router		/api/users [get]
func (s *Server) handlerGetUsers(c *gin.Context) {
	response := []tUser{}
	for _, user := range s.service.Users() {
		response = append(response, newUser(user))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Add user
//	@Schemes
//	@Description	create a back-office user without switching the session
//	@Tags			user
//	@Accept			json
//	@Param			user	body	tRegistration	true	"user"
//	@Produce		json
//	@Success		201	{object}	tUser
//	@failure		400	"missing required field"
//	@failure		401	"not authorized"
//	@failure		409	"username already taken"
//	@failure		500	"internal error"
//	@Router			/api/users [post]
func (s *Server) handlerAddUser(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}
	jBody := tRegistration{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := s.service.Register(ctx, jBody.Username, jBody.Password, jBody.RoleID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newUser(user))
}

//	@Summary	Update user
//	@Schemes
//	@Description	change username, role or password; empty password keeps the current one
//	@Tags			user
//	@Accept			json
//	@Param			id		path	integer			true	"user id"
//	@Param			user	body	tRegistration	true	"user"
//	@Produce		json
//	@Success		200	{object}	tUser
//	@failure		400	"missing required field"
//	@failure		401	"not authorized"
//	@failure		404	"user not found"
//	@failure		409	"username already taken"
//	@failure		500	"internal error"
//	@Router			/api/users/{id} [put]
func (s *Server) handlerUpdateUser(c *gin.Context) {
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
	jBody := tRegistration{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	user := model.User{
		ID:       id,
		Username: jBody.Username,
		RoleID:   jBody.RoleID,
	}
	if err := s.service.UpdateUser(ctx, &user, jBody.Password); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUser(user))
}

//	@Summary	Delete user
//	@Schemes
//	@Tags		user
//	@Param		id	path	integer	true	"user id"
//	@Produce	plain
//	@Success	204	"user deleted"
//	@failure	401	"not authorized"
//	@failure	404	"user not found"
//	@failure	500	"internal error"
//	@Router		/api/users/{id} [delete]
func (s *Server) handlerDeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteUser(ctx, id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Writer.WriteHeader(http.StatusNoContent)
}
