package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/adapter/auth"
	"github.com/ykumar-dev/smartdining/internal/adapter/config"
	"github.com/ykumar-dev/smartdining/internal/adapter/gateway"
	"github.com/ykumar-dev/smartdining/internal/adapter/handler/http"
	"github.com/ykumar-dev/smartdining/internal/adapter/logger"
	"github.com/ykumar-dev/smartdining/internal/adapter/notify"
	"github.com/ykumar-dev/smartdining/internal/adapter/storage"
	"github.com/ykumar-dev/smartdining/internal/adapter/storage/repository"
	"github.com/ykumar-dev/smartdining/internal/core/service"
)

func main() {
	// Local development keeps secrets in .env; absence is fine.
	_ = godotenv.Load()

	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = storage.RunMigrations(conf.Database.DSN)
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	cashfree, err := gateway.NewCashfreeClient(conf.Gateway, log.Named("Cashfree"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}
	sms, err := notify.NewTwilioSMS(conf.SMS, log.Named("Twilio"))
	if err != nil {
		log.Error("sms client creating error", zap.Error(err))
		return
	}
	email := notify.NewSMTPSender(conf.SMTP)

	svc, err := service.NewService(repo, tokenService, cashfree, sms, email, service.Config{
		ReturnURLBase: conf.Links.ReturnURLBase,
		NotifyURL:     conf.Links.NotifyURL,
		FeedbackURL:   conf.Links.FeedbackURL,
		OrderingURL:   conf.Links.OrderingURL,
		ResetURL:      conf.Links.ResetURL,
		Admins:        conf.Auth.Admins,
	}, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	reservationHandler, err := http.NewReservationHandler(svc, log.Named("Reservation handler"))
	if err != nil {
		log.Error("reservation handler creating error", zap.Error(err))
		return
	}
	catalogHandler, err := http.NewCatalogHandler(svc, log.Named("Catalog handler"))
	if err != nil {
		log.Error("catalog handler creating error", zap.Error(err))
		return
	}
	feedbackHandler, err := http.NewFeedbackHandler(svc, conf.Links.OrderingURL, log.Named("Feedback handler"))
	if err != nil {
		log.Error("feedback handler creating error", zap.Error(err))
		return
	}
	otpHandler, err := http.NewOTPHandler(svc, log.Named("OTP handler"))
	if err != nil {
		log.Error("otp handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(tokenService, userHandler, paymentHandler,
		reservationHandler, catalogHandler, feedbackHandler, otpHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
