package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/venuebook/app/services"
	"github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

type NewsController struct {
	news News
}

func NewNewsController(news News) *NewsController {
	return &NewsController{news: news}
}

type newsForm struct {
	NewsID  uint   `form:"newsID"`
	Title   string `form:"title"   validate:"required,max=255"`
	Content string `form:"content" validate:"required"`
}

func (nc *NewsController) Show(c *ctx.Context) {
	id, err := c.Uint("newsID")
	if err != nil {
		badRequest(c, err)
		return
	}
	n, err := nc.news.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("news", response.Model{"news": n})
}

// List renders one page of news, page 1 by default.
func (nc *NewsController) List(c *ctx.Context) {
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := nc.news.Page(c.Context(), page, services.UserPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("news_list", response.Model{"news_list": p.Items, "total": p.TotalPages()})
}

func (nc *NewsController) PageJSON(c *ctx.Context) {
	nc.pageJSON(c, services.UserPageSize)
}

func (nc *NewsController) AdminList(c *ctx.Context) {
	nc.pageJSON(c, services.AdminPageSize)
}

func (nc *NewsController) pageJSON(c *ctx.Context, size int) {
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := nc.news.Page(c.Context(), page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Items)
}

func (nc *NewsController) Manage(c *ctx.Context) {
	p, err := nc.news.Page(c.Context(), 1, services.AdminPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("admin/news_manage", response.Model{"total": p.TotalPages()})
}

func (nc *NewsController) AddForm(c *ctx.Context) {
	c.View("admin/news_add", nil)
}

func (nc *NewsController) Edit(c *ctx.Context) {
	id, err := c.Uint("newsID")
	if err != nil {
		badRequest(c, err)
		return
	}
	n, err := nc.news.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("admin/news_edit", response.Model{"news": n})
}

func (nc *NewsController) Add(c *ctx.Context) {
	var f newsForm
	if !c.BindForm(&f) {
		return
	}
	if _, err := nc.news.Create(c.Context(), f.Title, f.Content); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/admin/news_manage")
}

func (nc *NewsController) Modify(c *ctx.Context) {
	var f newsForm
	if !c.BindForm(&f) {
		return
	}
	if f.NewsID == 0 {
		c.Error(http.StatusBadRequest, "newsID is required")
		return
	}
	if err := nc.news.Update(c.Context(), f.NewsID, f.Title, f.Content); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/admin/news_manage")
}

func (nc *NewsController) Delete(c *ctx.Context) {
	id, err := c.Uint("newsID")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := nc.news.Delete(c.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}
