package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/venuebook/app/services"
	"github.com/shashiranjanraj/venuebook/pkg/auth"
	"github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/metrics"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

type UserController struct {
	users Users
}

func NewUserController(users Users) *UserController {
	return &UserController{users: users}
}

type accountForm struct {
	UserID    string `form:"userID"    validate:"nullable,max=64"`
	OldUserID string `form:"oldUserID" validate:"nullable,max=64"`
	UserName  string `form:"userName"  validate:"nullable,max=255"`
	Password  string `form:"password"`
	Email     string `form:"email"     validate:"nullable,email"`
	Phone     string `form:"phone"     validate:"nullable,max=32"`
	Picture   string `form:"picture"   validate:"nullable,max=255"`
}

func (f accountForm) account() services.Account {
	return services.Account{
		UserID:   f.UserID,
		UserName: f.UserName,
		Password: f.Password,
		Email:    f.Email,
		Phone:    f.Phone,
		Picture:  f.Picture,
	}
}

func (uc *UserController) Signup(c *ctx.Context) { c.View("signup", nil) }

func (uc *UserController) LoginForm(c *ctx.Context) { c.View("login", nil) }

// Register creates a customer account and sends them to the login page.
func (uc *UserController) Register(c *ctx.Context) {
	var f accountForm
	if !c.BindForm(&f) {
		return
	}
	if strings.TrimSpace(f.UserID) == "" || strings.TrimSpace(f.UserName) == "" || f.Password == "" {
		c.String(http.StatusBadRequest, "Missing parameters")
		return
	}
	if _, err := uc.users.Register(c.Context(), f.account()); err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.String(http.StatusConflict, "User already exists")
			return
		}
		fail(c, err)
		return
	}
	c.Redirect("/login")
}

// LoginCheck answers the page to go to next, or false. Admins get the
// admin cookie, everyone else the user cookie.
func (uc *UserController) LoginCheck(c *ctx.Context) {
	u, err := uc.users.Login(c.Context(), c.PostForm("userID"), c.PostForm("password"))
	if errors.Is(err, services.ErrBadCredentials) {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		logger.WithCtx(c.Context()).Info("login rejected", "user_id", c.PostForm("userID"), "ip", c.ClientIP())
		c.Bool(false)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	role, next := auth.RoleUser, "/index"
	if u.Admin() {
		role, next = auth.RoleAdmin, "/admin_index"
	}
	if err := auth.SetCookie(c.W, auth.Principal{UserID: u.UserID, UserName: u.UserName, Role: role}); err != nil {
		fail(c, err)
		return
	}
	metrics.LoginAttempts.WithLabelValues(role).Inc()
	c.String(http.StatusOK, next)
}

func (uc *UserController) Logout(c *ctx.Context) {
	auth.ClearCookie(c.W, auth.RoleUser)
	c.Redirect("/index")
}

func (uc *UserController) Quit(c *ctx.Context) {
	auth.ClearCookie(c.W, auth.RoleAdmin)
	c.Redirect("/index")
}

func (uc *UserController) Info(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	u, err := uc.users.Get(c.Context(), p.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("user_info", response.Model{"user": u})
}

// Update rewrites the caller's profile from userName and passwordNew.
func (uc *UserController) Update(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	var f accountForm
	if !c.BindForm(&f) {
		return
	}
	a := f.account()
	a.Password = c.PostForm("passwordNew")
	u, err := uc.users.UpdateProfile(c.Context(), p.UserID, a)
	if err != nil {
		fail(c, err)
		return
	}
	if err := auth.SetCookie(c.W, auth.Principal{UserID: u.UserID, UserName: u.UserName, Role: auth.RoleUser}); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/user_info")
}

func (uc *UserController) CheckPassword(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	match, err := uc.users.CheckPassword(c.Context(), p.UserID, c.PostForm("password"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Bool(match)
}

func (uc *UserController) Manage(c *ctx.Context) {
	p, err := uc.users.Page(c.Context(), 1, services.AdminPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("admin/user_manage", response.Model{"total": p.TotalPages()})
}

func (uc *UserController) AddForm(c *ctx.Context) {
	c.View("admin/user_add", nil)
}

func (uc *UserController) Edit(c *ctx.Context) {
	id, err := c.Uint("id")
	if err != nil {
		badRequest(c, err)
		return
	}
	u, err := uc.users.GetByID(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("admin/user_edit", response.Model{"user": u})
}

func (uc *UserController) AdminList(c *ctx.Context) {
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := uc.users.Page(c.Context(), page, services.AdminPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Items)
}

func (uc *UserController) Add(c *ctx.Context) {
	var f accountForm
	if !c.BindForm(&f) {
		return
	}
	if _, err := uc.users.Create(c.Context(), f.account()); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/admin/user_manage")
}

// Modify rewrites the account named by oldUserID, which may be renamed to
// userID.
func (uc *UserController) Modify(c *ctx.Context) {
	var f accountForm
	if !c.BindForm(&f) {
		return
	}
	old := strings.TrimSpace(f.OldUserID)
	if old == "" {
		old = f.UserID
	}
	if _, err := uc.users.Modify(c.Context(), old, f.account()); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/admin/user_manage")
}

func (uc *UserController) Delete(c *ctx.Context) {
	id, err := c.Uint("id")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := uc.users.Delete(c.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}

// CheckUserID answers true when userID is free.
func (uc *UserController) CheckUserID(c *ctx.Context) {
	ok, err := uc.users.UserIDAvailable(c.Context(), c.PostForm("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Bool(ok)
}
