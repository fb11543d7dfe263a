// internal/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/appdevg6/boost-web/internal/backend"
	"github.com/appdevg6/boost-web/internal/models"
	"github.com/appdevg6/boost-web/internal/session"
	"github.com/appdevg6/boost-web/internal/utils"
)

type AuthHandler struct {
	users    *backend.UserClient
	sessions *session.Store
	flashes  *session.FlashStore
	render   *Renderer
}

func NewAuthHandler(users *backend.UserClient, sessions *session.Store, flashes *session.FlashStore, render *Renderer) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		flashes:  flashes,
		render:   render,
	}
}

// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := h.sessions.Read(c); ok {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	h.render.HTML(c, http.StatusOK, "login.html", gin.H{})
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if email == "" || password == "" {
		h.render.HTML(c, http.StatusBadRequest, "login.html", gin.H{
			"Error": "Email and password are required",
			"Email": email,
		})
		return
	}

	user, err := h.users.Login(c.Request.Context(), email, password)
	if err != nil {
		h.render.HTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"Error": err.Error(),
			"Email": email,
		})
		return
	}

	if err := h.sessions.Save(c, user); err != nil {
		h.render.HTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Could not start a session",
			"Email": email,
		})
		return
	}

	c.Redirect(http.StatusFound, "/home")
}

// registerForm carries the raw register inputs through validation.
type registerForm struct {
	Username        string
	Firstname       string
	Middlename      string
	Lastname        string
	StudentEmail    string
	Password        string
	ConfirmPassword string
	Phone           string
}

func readRegisterForm(c *gin.Context) registerForm {
	return registerForm{
		Username:        c.PostForm("username"),
		Firstname:       strings.TrimSpace(c.PostForm("firstname")),
		Middlename:      c.PostForm("middlename"),
		Lastname:        strings.TrimSpace(c.PostForm("lastname")),
		StudentEmail:    strings.TrimSpace(c.PostForm("studentEmail")),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirmPassword"),
		Phone:           c.PostForm("phone"),
	}
}

// validateRegisterForm runs the local checks that must reject a submission
// before any request is sent.
func validateRegisterForm(form registerForm) (string, string) {
	if form.Firstname == "" || form.Lastname == "" || form.StudentEmail == "" || form.Password == "" || form.Phone == "" {
		return "", "Please fill in all required fields"
	}
	if !strings.HasSuffix(strings.ToLower(form.StudentEmail), ".edu") {
		return "", "Please use a .edu student email"
	}
	if len(form.Password) < 8 {
		return "", "Password must be at least 8 characters"
	}
	if form.Password != form.ConfirmPassword {
		return "", "Passwords do not match"
	}
	phone, ok := utils.NormalizePhilippinePhone(form.Phone)
	if !ok {
		return "", "Enter a valid Philippine phone number (example: 9XXXXXXXXX). Country code +63 will be added."
	}
	return phone, ""
}

// GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "register.html", gin.H{"Form": registerForm{}})
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	form := readRegisterForm(c)

	phone, errMsg := validateRegisterForm(form)
	if errMsg != "" {
		h.render.HTML(c, http.StatusBadRequest, "register.html", gin.H{
			"Error": errMsg,
			"Form":  form,
		})
		return
	}

	username := utils.NormalizeUsername(form.Username)
	if username == "" {
		username = utils.FallbackUsername(form.Firstname, form.Middlename, form.Lastname)
	}

	payload := &models.User{
		Username:   username,
		Firstname:  form.Firstname,
		Middlename: utils.MiddleInitial(form.Middlename),
		Lastname:   form.Lastname,
		Email:      form.StudentEmail,
		Password:   form.Password,
		Phone:      phone,
		Role:       models.RoleStudent,
	}

	if err := utils.ValidateStruct(payload); err != nil {
		h.render.HTML(c, http.StatusBadRequest, "register.html", gin.H{
			"Error": utils.FirstValidationMessage(err),
			"Form":  form,
		})
		return
	}

	if _, err := h.users.Register(c.Request.Context(), payload); err != nil {
		h.render.HTML(c, http.StatusBadRequest, "register.html", gin.H{
			"Error": err.Error(),
			"Form":  form,
		})
		return
	}

	h.flashes.Set(c, "success", "Account created. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/")
}
