package echoServer

import (
	"roomrental/app/echoServer/controller/auth"
	"roomrental/app/echoServer/controller/dashboard"
	"roomrental/app/echoServer/controller/order"
	"roomrental/app/echoServer/controller/payment"
	"roomrental/app/echoServer/controller/review"
	"roomrental/app/echoServer/sessionx"
	sessionrepo "roomrental/repository/session"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *auth.Controller
	Order     *order.Controller
	Payment   *payment.Controller
	Review    *review.Controller
	Dashboard *dashboard.Controller

	Sessions sessionrepo.Store
}

func Register(e *echo.Echo, c C) {
	session := sessionx.Middleware(c.Sessions)

	// Gateway redirect landing; reachable signed out.
	e.GET("/payment/:result", c.Payment.Redirect)

	v1 := e.Group("/v1", session)

	// Auth
	v1.POST("/auth/login", c.Auth.Login)
	v1.POST("/auth/register", c.Auth.Register)
	v1.POST("/auth/verify-email", c.Auth.VerifyEmail)
	v1.POST("/auth/resend-verification", c.Auth.ResendVerification)
	v1.POST("/auth/logout", c.Auth.Logout)

	// Orders
	v1.GET("/orders", c.Order.List)
	v1.POST("/orders", c.Order.Create)
	v1.PATCH("/orders/:uuid/confirm", c.Order.Confirm)
	v1.PATCH("/orders/:uuid/reject", c.Order.Reject)
	v1.PATCH("/orders/:uuid", c.Order.Update)
	v1.PATCH("/orders/:uuid/cancel", c.Order.Cancel)
	v1.PATCH("/orders/:uuid/proof", c.Order.UploadProof)
	v1.POST("/orders/:uuid/reminder", c.Order.Reminder)

	// Payment widget flow
	v1.POST("/payment/checkout", c.Payment.Checkout)
	v1.POST("/payment/callback", c.Payment.Callback)

	// Reviews
	v1.POST("/reviews", c.Review.Create)
	v1.POST("/reviews/reply", c.Review.Reply)
	v1.GET("/reviews/property/:id", c.Review.ListByProperty)
	v1.GET("/reviews/user", c.Review.ListByUser)

	// Dashboard
	v1.GET("/dashboard/summary", c.Dashboard.Summary)
	v1.GET("/dashboard/reports/sales", c.Dashboard.SalesReport)
	v1.GET("/dashboard/reports/property", c.Dashboard.PropertyReport)
}
