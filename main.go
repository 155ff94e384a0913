package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/retailsim/tienda/internal/application/checkout"
	"github.com/retailsim/tienda/internal/display"
	"github.com/retailsim/tienda/internal/domain/customer"
	"github.com/retailsim/tienda/internal/domain/event"
	"github.com/retailsim/tienda/internal/domain/product"
	"github.com/retailsim/tienda/internal/domain/store"
	"github.com/retailsim/tienda/internal/infrastructure/bus"
	"github.com/retailsim/tienda/internal/infrastructure/id"
	"github.com/retailsim/tienda/internal/observability"
	"github.com/retailsim/tienda/internal/pkg/logging"
)

// main runs a fixed scripted scenario: two products, two customers, one
// purchase that fails validation and one that commits.
func main() {
	serviceName := getenvDefault("SERVICE_NAME", "tienda")
	env := getenvDefault("ENV", "dev")
	logger := logging.MustNewLogger(serviceName, env)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	metrics := observability.NewCheckoutMetrics(prometheus.DefaultRegisterer)
	tracer := observability.NewTracer(serviceName)

	ctx := context.Background()
	eventBus := bus.New(logger)
	eventBus.Start(ctx)
	defer eventBus.Stop(ctx)
	subscribeAudit(eventBus, logger)

	sink := display.NewWriterSink(os.Stdout)
	tienda := store.New("La Tienda de Manuel Lapo", sink)
	svc := checkout.NewService(tienda, id.NewUUIDGenerator(), eventBus, logger, metrics, tracer)

	laptop := mustProduct("Laptop Gamer", "1200.00", 5)
	teclado := mustProduct("Teclado Mecánico", "80.50", 10)
	mustRegister(ctx, svc, logger, laptop, teclado)
	svc.ShowCatalog()

	manuel := mustCustomer("Manuel Lapo", "ML001", sink)
	maribel := mustCustomer("Maribel Salinas", "MS002", sink)
	sink.Println(manuel.String())
	sink.Println(maribel.String())

	svc.AddToCart(ctx, manuel, laptop, 1)
	svc.AddToCart(ctx, manuel, teclado, 2)
	svc.AddToCart(ctx, manuel, laptop, 1)
	// Succeeds at add time: the check is against current stock only, not the
	// quantities already carted. Checkout rejects the combined 12.
	svc.AddToCart(ctx, manuel, teclado, 10)

	if _, err := svc.Checkout(ctx, manuel); err != nil {
		logger.Error("checkout_error", zap.Error(err))
	}
	svc.ShowCatalog()

	svc.AddToCart(ctx, maribel, laptop, 5)
	if _, err := svc.Checkout(ctx, maribel); err != nil {
		logger.Error("checkout_error", zap.Error(err))
	}
	svc.ShowCatalog()
}

func subscribeAudit(b *bus.Bus, logger *zap.Logger) {
	audit := func(_ context.Context, e event.Event) error {
		logger.Info("domain_event",
			zap.String("event", e.EventName()),
			zap.Any("payload", e),
		)
		return nil
	}
	for _, name := range []string{
		store.ProductRegisteredEvent{}.EventName(),
		store.PurchaseCompletedEvent{}.EventName(),
		store.PurchaseFailedEvent{}.EventName(),
	} {
		b.Subscribe(name, audit)
	}
}

func mustRegister(ctx context.Context, svc *checkout.Service, logger *zap.Logger, products ...*product.Product) {
	for _, p := range products {
		if err := svc.RegisterProduct(ctx, p); err != nil {
			logger.Error("register_product_error", zap.Error(err))
		}
	}
}

func mustProduct(name, price string, stock int) *product.Product {
	p, err := product.New(name, decimal.RequireFromString(price), stock)
	if err != nil {
		panic(err)
	}
	return p
}

func mustCustomer(name, customerID string, sink display.Sink) *customer.Customer {
	c, err := customer.New(name, customerID, sink)
	if err != nil {
		panic(err)
	}
	return c
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
