package controllers

import (
	"github.com/shashiranjanraj/venuebook/app/services"
	"github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

type HomeController struct {
	venues   Venues
	news     News
	messages Messages
}

func NewHomeController(venues Venues, news News, messages Messages) *HomeController {
	return &HomeController{venues: venues, news: news, messages: messages}
}

// Index renders the first page of venues, news and approved messages.
func (hc *HomeController) Index(c *ctx.Context) {
	venues, err := hc.venues.Page(c.Context(), 1, services.UserPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	news, err := hc.news.Page(c.Context(), 1, services.UserPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	messages, err := hc.messages.Approved(c.Context(), 1)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("index", response.Model{
		"venue_list":   venues.Items,
		"news_list":    news.Items,
		"message_list": messages.Items,
	})
}

func (hc *HomeController) AdminIndex(c *ctx.Context) {
	c.View("admin_index", nil)
}
