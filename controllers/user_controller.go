package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/utils"
)

type UserController struct {
	users  *services.UserService
	limits uploadLimit
}

func NewUserController(users *services.UserService, maxUploadMB int64) *UserController {
	return &UserController{users: users, limits: uploadLimit{maxMB: maxUploadMB}}
}

func (h *UserController) Signup(c *gin.Context) {
	var input models.SignupInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	user, err := h.users.Register(ctx, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "User registered successfully", user)
}

func (h *UserController) Login(c *gin.Context) {
	var input models.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	token, user, err := h.users.Login(ctx, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Login successful", gin.H{"token": token, "user": user})
}

func (h *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	user, err := h.users.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "User details fetched", user)
}

func (h *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	var patch models.UserPatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	user, err := h.users.Update(ctx, id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "User updated successfully", user)
}

func (h *UserController) AddAddress(c *gin.Context) {
	id, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	var body struct {
		Address *models.Address `json:"address"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if body.Address == nil {
		utils.Error(c, http.StatusBadRequest, "address is required")
		return
	}
	ctx, cancel := requestContext(c, requestTimeout)
	defer cancel()

	user, err := h.users.AddAddress(ctx, id, *body.Address)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Address added successfully", user)
}

func (h *UserController) UploadAvatar(c *gin.Context) {
	id, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "image file is required")
		return
	}
	if !h.limits.check(c, fh) {
		return
	}
	file, err := fh.Open()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	defer file.Close()

	ctx, cancel := requestContext(c, uploadTimeout)
	defer cancel()

	user, err := h.users.UploadAvatar(ctx, id, file)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Profile picture updated successfully", user)
}
