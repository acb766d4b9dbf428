package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"snipboard/backend/internal/apperror"
	"snipboard/backend/internal/models"
	"snipboard/backend/internal/service"
	"snipboard/backend/pkg/jwt"
)

// region --- DTOs ---

// RegisterPayload defines the registration body. Required fields are
// pointers so absent keys are reported with per-field errors.
type RegisterPayload struct {
	Username        *string `json:"username" example:"alice"`
	Email           *string `json:"email" example:"alice@example.com"`
	Password        *string `json:"password" example:"s3cret123"`
	ConfirmPassword *string `json:"confirm_password" example:"s3cret123"`
	FirstName       string  `json:"first_name" example:"Alice"`
	LastName        string  `json:"last_name" example:"Smith"`
	Roles           string  `json:"roles" example:"user"`
}

// TokenPayload defines the credential body for token issuance.
type TokenPayload struct {
	Username *string `json:"username" example:"alice"`
	Password *string `json:"password" example:"s3cret123"`
}

// UserResponse is the user representation returned on registration.
// It never includes the password or its hash.
type UserResponse struct {
	ID        uint   `json:"id" example:"1"`
	Username  string `json:"username" example:"alice"`
	Email     string `json:"email" example:"alice@example.com"`
	FirstName string `json:"first_name" example:"Alice"`
	LastName  string `json:"last_name" example:"Smith"`
	Roles     string `json:"roles" example:"user"`
}

// TokenResponse carries a freshly minted token pair.
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     user.Roles,
	}
}

// endregion

// UserServicer defines the business operations the user handler depends on.
type UserServicer interface {
	Register(in service.RegisterInput) (models.User, error)
	Authenticate(username, password string) (models.User, error)
}

// UserHandler serves registration and token issuance. Both endpoints are
// unauthenticated.
type UserHandler struct {
	users     UserServicer
	jwtSecret string
}

// NewUserHandler constructs a UserHandler with its dependencies.
func NewUserHandler(users UserServicer, jwtSecret string) *UserHandler {
	return &UserHandler{users: users, jwtSecret: jwtSecret}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account and returns its representation without the password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterPayload true "Registration info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  map[string][]string "Per-field errors"
// @Router       /register-user [post]
func (h *UserHandler) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, detailBody("JSON parse error."))
		return
	}

	user, err := h.users.Register(service.RegisterInput{
		Username:        payload.Username,
		Email:           payload.Email,
		Password:        payload.Password,
		ConfirmPassword: payload.ConfirmPassword,
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Roles:           payload.Roles,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(user))
}

// ObtainToken godoc
// @Summary      Obtain a token pair
// @Description  Verifies credentials and returns an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body TokenPayload true "Credentials"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  map[string][]string "Per-field errors"
// @Failure      401  {object}  DetailResponse
// @Router       /auth/token [post]
func (h *UserHandler) ObtainToken(c *gin.Context) {
	var payload TokenPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, detailBody("JSON parse error."))
		return
	}

	fields := apperror.FieldErrors{}
	if payload.Username == nil {
		fields["username"] = []string{apperror.MsgRequired}
	}
	if payload.Password == nil {
		fields["password"] = []string{apperror.MsgRequired}
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, fields)
		return
	}

	user, err := h.users.Authenticate(*payload.Username, *payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, detailBody("No active account found with the given credentials"))
			return
		}
		writeError(c, err)
		return
	}

	access, refresh, err := jwt.GenerateTokenPair(user.ID, h.jwtSecret)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Access: access, Refresh: refresh})
}
