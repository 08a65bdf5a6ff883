// Package main room rental web API.
//
// @title           Room Rental Web API
// @version         1.0
// @description     Web tier for the room rental app: session handling, orders, payment widget flow, reviews.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"log/slog"
	"os"
	"time"

	"roomrental/app/echoServer"
	authctrl "roomrental/app/echoServer/controller/auth"
	dashctrl "roomrental/app/echoServer/controller/dashboard"
	orderctrl "roomrental/app/echoServer/controller/order"
	paymentctrl "roomrental/app/echoServer/controller/payment"
	reviewctrl "roomrental/app/echoServer/controller/review"
	"roomrental/app/echoServer/validation"
	"roomrental/config"
	authrepo "roomrental/repository/auth"
	"roomrental/repository/backend"
	reportrepo "roomrental/repository/report"
	reviewrepo "roomrental/repository/review"
	sessionrepo "roomrental/repository/session"
	txrepo "roomrental/repository/transaction"
	authsvc "roomrental/service/auth"
	dashsvc "roomrental/service/dashboard"
	paymentsvc "roomrental/service/payment"
	reviewsvc "roomrental/service/review"
	txsvc "roomrental/service/transaction"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// outbound gateway + stores
	api := backend.New(cfg.BackendAPIURL)
	sessions := sessionrepo.New(cfg.RedisAddr, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// repos
	ar := authrepo.New(api)
	tr := txrepo.New(api)
	rr := reviewrepo.New(api)
	pr := reportrepo.New(api)

	// services
	as := authsvc.New(ar, sessions)
	ts := txsvc.New(tr)
	rs := reviewsvc.New(rr)
	ds := dashsvc.New(pr)
	ps := paymentsvc.New(tr, paymentsvc.NewWidgetLoader(cfg.MidtransClientKey, cfg.MidtransProduction))

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, Sessions: sessions, V: v, Log: log}
	orderC := &orderctrl.Controller{Svc: ts, Auth: as, Sessions: sessions, V: v, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, Sessions: sessions, V: v, Log: log}
	reviewC := &reviewctrl.Controller{Svc: rs, Sessions: sessions, V: v, Log: log}
	dashC := &dashctrl.Controller{Svc: ds, Tx: ts, Sessions: sessions, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Order:     orderC,
		Payment:   paymentC,
		Review:    reviewC,
		Dashboard: dashC,

		Sessions: sessions,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
