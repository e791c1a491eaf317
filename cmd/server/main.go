package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appconfig "github.com/dmitrymomot/almare/internal/config"
	"github.com/dmitrymomot/almare/internal/forms"
	"github.com/dmitrymomot/almare/internal/site"
	"github.com/dmitrymomot/almare/pkg/analytics"
	"github.com/dmitrymomot/almare/pkg/config"
	"github.com/dmitrymomot/almare/pkg/environment"
	"github.com/dmitrymomot/almare/pkg/httpserver"
	"github.com/dmitrymomot/almare/pkg/i18n"
	"github.com/dmitrymomot/almare/pkg/logger"
	"github.com/dmitrymomot/almare/pkg/mailer"
	"github.com/dmitrymomot/almare/pkg/ratelimiter"
	"github.com/dmitrymomot/almare/pkg/redis"
	"github.com/dmitrymomot/almare/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app appconfig.App
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.ServiceName),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(ctx, app, log); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appconfig.App, log *slog.Logger) error {
	var (
		serverCfg  httpserver.Config
		siteCfg    site.Config
		formsCfg   forms.Config
		mailerCfg  mailer.Config
		limiterCfg ratelimiter.Config
		redisCfg   redis.Config
	)
	if err := errors.Join(
		config.Load(&serverCfg),
		config.Load(&siteCfg),
		config.Load(&formsCfg),
		config.Load(&mailerCfg),
		config.Load(&limiterCfg),
		config.Load(&redisCfg),
	); err != nil {
		return err
	}

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), site.Locales(), "."),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(environment.Parse(app.Env) == environment.Development),
	)
	if err != nil {
		return err
	}
	views, err := site.NewViews(site.Templates())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	sinks := []analytics.Sink{
		analytics.NewLogSink(log.With(logger.Component("analytics"))),
		analytics.NewPrometheusSink(reg),
	}

	var checks []httpserver.Check
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		sinks = append(sinks, analytics.NewRedisStreamSink(client, app.AnalyticsStream, app.AnalyticsMaxLen, log))
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	}
	sink := analytics.Stamped(analytics.Multi(sinks...), time.Now)

	sender, err := mailer.New(ctx, mailerCfg, log)
	if err != nil {
		return err
	}
	catalog, err := forms.NewCatalog(forms.DefaultCurrencies()...)
	if err != nil {
		return err
	}
	svc, err := forms.NewService(formsCfg, sender, sink, catalog, forms.WithLogger(log))
	if err != nil {
		return err
	}

	tracker := forms.NewTracker(formsCfg.InstanceTTL, formsCfg.ResetAfter,
		forms.WithMaxInstances(formsCfg.MaxInstances),
	)
	defer tracker.Close()
	go tracker.Run(ctx, formsCfg.EvictInterval)

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, limiterCfg)
	if err != nil {
		return err
	}

	s, err := site.New(site.Deps{
		Config:      siteCfg,
		Environment: environment.Parse(app.Env),
		Translator:  tr,
		Views:       views,
		Forms:       svc,
		Tracker:     tracker,
		Blog:        site.NewBlog(site.DefaultPosts()...),
		Analytics:   sink,
		Logger:      log,
		Limiter:     limiter,
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Checks:      checks,
	})
	if err != nil {
		return err
	}

	return httpserver.New(serverCfg, httpserver.WithLogger(log)).Run(ctx, s.Handler())
}
