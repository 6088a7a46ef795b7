// Package routes maps every endpoint to its controller and guard.
package routes

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/venuebook/app/controllers"
	"github.com/shashiranjanraj/venuebook/app/repositories"
	"github.com/shashiranjanraj/venuebook/app/services"
	"github.com/shashiranjanraj/venuebook/config"
	"github.com/shashiranjanraj/venuebook/pkg/auth"
	"github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/middleware"
	"github.com/shashiranjanraj/venuebook/pkg/router"
)

// Services bundles the business services behind the controllers.
type Services struct {
	Venues   *services.VenueService
	News     *services.NewsService
	Orders   *services.OrderService
	Messages *services.MessageService
	Users    *services.UserService
}

// NewServices wires the services to gorm repositories on db.
func NewServices(db *gorm.DB) Services {
	venues := repositories.NewVenueRepository(db)
	users := repositories.NewUserRepository(db)
	return Services{
		Venues:   services.NewVenueService(venues),
		News:     services.NewNewsService(repositories.NewNewsRepository(db)),
		Orders:   services.NewOrderService(repositories.NewOrderRepository(db), venues),
		Messages: services.NewMessageService(repositories.NewMessageRepository(db), users),
		Users:    services.NewUserService(users),
	}
}

// Controllers holds one controller per area.
type Controllers struct {
	Home    *controllers.HomeController
	Venue   *controllers.VenueController
	News    *controllers.NewsController
	Order   *controllers.OrderController
	Message *controllers.MessageController
	User    *controllers.UserController
}

func NewControllers(s Services) Controllers {
	return Controllers{
		Home:    controllers.NewHomeController(s.Venues, s.News, s.Messages),
		Venue:   controllers.NewVenueController(s.Venues),
		News:    controllers.NewNewsController(s.News),
		Order:   controllers.NewOrderController(s.Orders, s.Venues),
		Message: controllers.NewMessageController(s.Messages),
		User:    controllers.NewUserController(s.Users),
	}
}

// RegisterWeb mounts the public, user and admin endpoints.
func RegisterWeb(r *router.Router, c Controllers) {
	w := ctx.Wrap
	login := middleware.RateLimit(config.LoginRateLimit(), time.Minute)

	r.Get("/", "home", w(c.Home.Index))
	r.Get("/index", "index", w(c.Home.Index))
	r.Get("/venue", "venue.show", w(c.Venue.Show))
	r.Get("/venue_list", "venue.list", w(c.Venue.List))
	r.Get("/venuelist/getVenueList", "venue.page", w(c.Venue.PageJSON))
	r.Get("/news", "news.show", w(c.News.Show))
	r.Get("/news_list", "news.list", w(c.News.List))
	r.Get("/newsList.do", "news.page", w(c.News.PageJSON))
	r.Get("/messagelist/getMessageList", "message.page", w(c.Message.ApprovedList))
	r.Get("/order/getOrderList.do", "order.venue_day", w(c.Order.VenueDay))
	r.Get("/signup", "user.signup", w(c.User.Signup))
	r.Get("/login", "user.login", w(c.User.LoginForm))
	r.Post("/register.do", "user.register", w(c.User.Register))
	r.Post("/loginCheck.do", "user.login_check", w(c.User.LoginCheck), login)
	r.Any("/logout.do", "user.logout", w(c.User.Logout))
	r.Any("/quit.do", "admin.quit", w(c.User.Quit))

	user := r.Group("", auth.Guard(auth.RoleUser))
	user.Get("/user_info", "user.info", w(c.User.Info))
	user.Post("/updateUser.do", "user.update", w(c.User.Update))
	user.Any("/checkPassword.do", "user.check_password", w(c.User.CheckPassword))
	user.Get("/order_manage", "order.manage", w(c.Order.Manage))
	user.Get("/order_place.do", "order.place", w(c.Order.Place))
	user.Get("/getOrderList.do", "order.page", w(c.Order.UserList))
	user.Post("/addOrder.do", "order.add", w(c.Order.Add))
	user.Post("/finishOrder.do", "order.finish", w(c.Order.Finish))
	user.Get("/modifyOrder.do", "order.edit", w(c.Order.EditForm))
	user.Post("/modifyOrder", "order.modify", w(c.Order.Modify))
	user.Post("/delOrder.do", "order.delete", w(c.Order.Delete))
	user.Get("/message_list", "message.board", w(c.Message.Board))
	user.Get("/message/findUserList", "message.user_page", w(c.Message.UserList))
	user.Post("/sendMessage", "message.send", w(c.Message.Send))
	user.Post("/modifyMessage.do", "message.modify", w(c.Message.Modify))
	user.Post("/delMessage.do", "message.delete", w(c.Message.DeleteOwn))

	r.Get("/admin_index", "admin.index", w(c.Home.AdminIndex), auth.Guard(auth.RoleAdmin))

	admin := r.Group("/admin", auth.Guard(auth.RoleAdmin))
	admin.Get("/venue_manage", "admin.venue.manage", w(c.Venue.Manage))
	admin.Get("/venue_edit", "admin.venue.edit", w(c.Venue.Edit))
	admin.Get("/venue_add", "admin.venue.add_form", w(c.Venue.AddForm))
	admin.Get("/venueList.do", "admin.venue.page", w(c.Venue.AdminList))
	admin.Post("/addVenue.do", "admin.venue.add", w(c.Venue.Add))
	admin.Post("/modifyVenue.do", "admin.venue.modify", w(c.Venue.Modify))
	admin.Post("/delVenue.do", "admin.venue.delete", w(c.Venue.Delete))
	admin.Any("/checkVenueName.do", "admin.venue.check_name", w(c.Venue.CheckName))

	admin.Get("/news_manage", "admin.news.manage", w(c.News.Manage))
	admin.Get("/news_add", "admin.news.add_form", w(c.News.AddForm))
	admin.Get("/news_edit", "admin.news.edit", w(c.News.Edit))
	admin.Get("/newsList.do", "admin.news.page", w(c.News.AdminList))
	admin.Post("/addNews.do", "admin.news.add", w(c.News.Add))
	admin.Post("/modifyNews.do", "admin.news.modify", w(c.News.Modify))
	admin.Post("/delNews.do", "admin.news.delete", w(c.News.Delete))

	admin.Get("/reservation_manage", "admin.order.manage", w(c.Order.Reservations))
	admin.Get("/getOrderList.do", "admin.order.page", w(c.Order.PendingList))
	admin.Post("/passOrder.do", "admin.order.pass", w(c.Order.Pass))
	admin.Post("/rejectOrder.do", "admin.order.reject", w(c.Order.Reject))

	admin.Get("/user_manage", "admin.user.manage", w(c.User.Manage))
	admin.Get("/user_add", "admin.user.add_form", w(c.User.AddForm))
	admin.Get("/user_edit", "admin.user.edit", w(c.User.Edit))
	admin.Get("/userList.do", "admin.user.page", w(c.User.AdminList))
	admin.Post("/addUser.do", "admin.user.add", w(c.User.Add))
	admin.Post("/modifyUser.do", "admin.user.modify", w(c.User.Modify))
	admin.Post("/delUser.do", "admin.user.delete", w(c.User.Delete))
	admin.Any("/checkUserID.do", "admin.user.check_id", w(c.User.CheckUserID))

	admin.Get("/message_manage", "admin.message.manage", w(c.Message.Manage))
	admin.Get("/messageList.do", "admin.message.page", w(c.Message.PendingList))
	admin.Post("/passMessage.do", "admin.message.pass", w(c.Message.Pass))
	admin.Post("/rejectMessage.do", "admin.message.reject", w(c.Message.Reject))
	admin.Post("/delMessage.do", "admin.message.delete", w(c.Message.Delete))
}
