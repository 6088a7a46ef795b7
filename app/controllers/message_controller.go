package controllers

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/venuebook/pkg/auth"
	"github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

type MessageController struct {
	messages Messages
}

func NewMessageController(messages Messages) *MessageController {
	return &MessageController{messages: messages}
}

// Board renders the message page: page counts of the public board and of
// the caller's own messages.
func (mc *MessageController) Board(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	public, err := mc.messages.Approved(c.Context(), 1)
	if err != nil {
		fail(c, err)
		return
	}
	own, err := mc.messages.ByUser(c.Context(), p.UserID, 1)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("message_list", response.Model{"total": public.TotalPages(), "user_total": own.TotalPages()})
}

// ApprovedList answers one page of the public board.
func (mc *MessageController) ApprovedList(c *ctx.Context) {
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := mc.messages.Approved(c.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Items)
}

func (mc *MessageController) UserList(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	msgs, err := mc.messages.ByUser(c.Context(), p.UserID, page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs.Items)
}

func (mc *MessageController) Send(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	if _, err := mc.messages.Send(c.Context(), p.UserID, c.PostForm("content")); err != nil {
		fail(c, err)
		return
	}
	c.Redirect("/message_list")
}

func (mc *MessageController) Modify(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	id, err := c.Uint("messageID")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := mc.messages.Modify(c.Context(), p.UserID, id, c.PostForm("content")); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}

func (mc *MessageController) DeleteOwn(c *ctx.Context) {
	p, ok := principal(c, auth.RoleUser)
	if !ok {
		return
	}
	id, err := c.Uint("messageID")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := mc.messages.DeleteOwned(c.Context(), p.UserID, id); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}

// Manage renders the review page with the number of pending pages.
func (mc *MessageController) Manage(c *ctx.Context) {
	p, err := mc.messages.Pending(c.Context(), 1)
	if err != nil {
		fail(c, err)
		return
	}
	c.View("admin/message_manage", response.Model{"total": p.TotalPages()})
}

func (mc *MessageController) PendingList(c *ctx.Context) {
	page, err := c.Page()
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := mc.messages.Pending(c.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Items)
}

func (mc *MessageController) Pass(c *ctx.Context) {
	mc.moderate(c, mc.messages.Confirm)
}

func (mc *MessageController) Reject(c *ctx.Context) {
	mc.moderate(c, mc.messages.Reject)
}

func (mc *MessageController) Delete(c *ctx.Context) {
	mc.moderate(c, mc.messages.Delete)
}

func (mc *MessageController) moderate(c *ctx.Context, apply func(context.Context, uint) error) {
	id, err := c.Uint("messageID")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := apply(c.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Bool(true)
}
