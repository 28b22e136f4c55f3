package apiv1

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/scalexhq/chatgate/store"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates a user. Passwords are kept verbatim: there is no
// persistence and no session layer, accounts only scope chat history.
func (s *APIV1Service) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Malformed request body")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "Email and password are required")
	}
	if !strings.Contains(req.Email, "@") {
		return jsonError(c, http.StatusBadRequest, "Invalid email format")
	}
	if len(req.Password) < 6 {
		return jsonError(c, http.StatusBadRequest, "Password must be at least 6 characters")
	}

	user := &store.User{
		Email:     req.Email,
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return jsonError(c, http.StatusBadRequest, "User already exists")
		}
		return jsonError(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Account created successfully",
		"user": map[string]any{
			"email":     user.Email,
			"createdAt": user.CreatedAt.Format(time.RFC3339),
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *APIV1Service) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Malformed request body")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "Email and password are required")
	}

	user, err := s.Store.GetUser(req.Email)
	if err != nil || user.Password != req.Password {
		return jsonError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now().UTC()
	if err := s.Store.UpdateLastLogin(req.Email, now); err != nil {
		return notFoundOr500(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"user": map[string]any{
			"email":     user.Email,
			"lastLogin": now.Format(time.RFC3339),
		},
	})
}
