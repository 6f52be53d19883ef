package delivery

import (
	"net/http"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase usecase.UserUseCase
	log     *logrus.Logger
}

func NewAuthHandler(uc usecase.UserUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var requestBody struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.useCase.Register(requestBody.Username, requestBody.Password)
	if err != nil {
		h.log.Warnf("Registration failed for '%s': %v", requestBody.Username, err)
		ErrorResponse(c, mapErrorToStatus(err), "Registration failed: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var requestBody struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	auth, err := h.useCase.Authenticate(requestBody.Username, requestBody.Password)
	if err != nil {
		h.log.Errorf("Authentication error for '%s': %v", requestBody.Username, err)
		ErrorResponse(c, http.StatusInternalServerError, "Authentication failed: "+err.Error())
		return
	}
	if !auth.Authenticated {
		ErrorResponse(c, http.StatusUnauthorized, auth.ErrorMessage)
		return
	}

	SuccessResponse(c, http.StatusOK, "Login successful", auth)
}
