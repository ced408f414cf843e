package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/dmitrijs2005/coderefine/internal/server/services"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AnalyzeRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

func (s *HTTPServer) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": services.SupportedLanguages})
}

func (s *HTTPServer) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorEmptyInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password are required"})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "username already exists"})
		default:
			s.logger.Error(ctx, "registration failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		return
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName)
	c.JSON(http.StatusCreated, RegisterResponse{ID: user.ID, Username: user.UserName})
}

func (s *HTTPServer) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorEmptyInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password are required"})
		case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorIncorrectPassword):
			// one message for both, existence is not disclosed
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
		default:
			s.logger.Error(ctx, "login failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, TokenPairResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *HTTPServer) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) || errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired refresh token"})
			return
		}
		s.logger.Error(ctx, "token refresh failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, TokenPairResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *HTTPServer) Analyze(c *gin.Context) {
	ctx := c.Request.Context()
	userName := c.GetString(userNameKey)

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	s.logger.Info(ctx, "Analysis request", "username", userName, "language", req.Language)

	result, err := s.analysis.Analyze(ctx, userName, req.Language, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorEmptyInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "code is required"})
		case errors.Is(err, common.ErrorUnsupportedLanguage):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported language"})
		default:
			s.logger.Error(ctx, "analysis failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		return
	}

	// provider faults travel in-band inside the result
	c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) History(c *gin.Context) {
	ctx := c.Request.Context()
	userName := c.GetString(userNameKey)

	entries, err := s.analysis.History(ctx, userName)
	if err != nil {
		s.logger.Error(ctx, "history listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
