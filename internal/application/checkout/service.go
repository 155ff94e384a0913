package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/retailsim/tienda/internal/domain/customer"
	"github.com/retailsim/tienda/internal/domain/event"
	"github.com/retailsim/tienda/internal/domain/product"
	"github.com/retailsim/tienda/internal/domain/store"
	"github.com/retailsim/tienda/internal/observability"
	"github.com/retailsim/tienda/internal/pkg/logging"
)

const (
	useCasePurchase  = "checkout.process_purchase"
	purchaseSpanName = "UC.ProcessPurchase"
	publishTimeout   = 300 * time.Millisecond
)

// Receipt records the outcome of one purchase attempt. A cancelled purchase
// still yields a receipt; Outcome says how it ended.
type Receipt struct {
	ID            string
	CustomerID    string
	Outcome       store.Outcome
	Total         decimal.Decimal
	FailedProduct string
	CreatedAt     time.Time
}

func (r *Receipt) Completed() bool { return r.Outcome == store.OutcomeCompleted }

// IDGenerator mints receipt identifiers.
type IDGenerator interface {
	NewID() string
}

// Service drives the store operations and layers receipts, structured
// logging, metrics, tracing and event publication on top of them. Soft
// business failures (empty cart, insufficient stock) are reported through the
// receipt, never as Go errors; the error return is reserved for
// infrastructure faults.
type Service struct {
	store     *store.Store
	idGen     IDGenerator
	publisher event.Publisher
	log       *zap.Logger
	metrics   *observability.CheckoutMetrics
	tracer    observability.Tracer
}

func NewService(
	st *store.Store,
	idGen IDGenerator,
	publisher event.Publisher,
	logger *zap.Logger,
	metrics *observability.CheckoutMetrics,
	tracer observability.Tracer,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	return &Service{
		store:     st,
		idGen:     idGen,
		publisher: publisher,
		log:       logger.With(zap.String("component", "checkout")),
		metrics:   metrics,
		tracer:    tracer,
	}
}

// RegisterProduct places p in the store catalog and announces it.
func (s *Service) RegisterProduct(ctx context.Context, p *product.Product) error {
	s.store.AddProduct(p)
	logging.FromContextOr(ctx, s.log).Info("product_registered",
		zap.String("product", p.Name),
		zap.String("price", p.Price.StringFixed(2)),
		zap.Int("stock", p.Stock),
	)
	if err := s.publish(ctx, store.NewProductRegisteredEvent(s.store.Name, p.Name, p.Stock)); err != nil {
		return fmt.Errorf("checkout: publish registration: %w", err)
	}
	return nil
}

// AddToCart delegates to the customer's optimistic add and counts the outcome.
func (s *Service) AddToCart(ctx context.Context, c *customer.Customer, p *product.Product, quantity int) bool {
	ok := c.AddToCart(p, quantity)
	outcome := "success"
	if !ok {
		outcome = "rejected"
	}
	if s.metrics != nil {
		s.metrics.CartAdditions.WithLabelValues(outcome).Inc()
	}
	logging.FromContextOr(ctx, s.log).Debug("cart_addition",
		zap.String("customer_id", c.ID),
		zap.String("product", p.Name),
		zap.Int("quantity", quantity),
		zap.String("outcome", outcome),
	)
	return ok
}

// ShowCatalog emits the store's catalog listing.
func (s *Service) ShowCatalog() {
	s.store.ShowCatalog()
}

// Checkout runs the store's purchase processing for c and wraps it in a
// receipt. The returned error only reports infrastructure faults (event
// publication); inspect Receipt.Outcome for the business result.
func (s *Service) Checkout(ctx context.Context, c *customer.Customer) (*Receipt, error) {
	logger := logging.FromContextOr(ctx, s.log).With(
		zap.String("use_case", useCasePurchase),
		zap.String("customer_id", c.ID),
	)

	ctx, span := s.tracer.Start(ctx, purchaseSpanName,
		attribute.String("use_case", useCasePurchase),
		attribute.String("customer.id", c.ID),
		attribute.Int("cart.lines", c.CartSize()),
	)
	start := time.Now()

	result := s.store.ProcessPurchase(c)

	latency := time.Since(start).Seconds()
	if s.metrics != nil {
		s.metrics.Purchases.WithLabelValues(string(result.Outcome)).Inc()
		s.metrics.PurchaseDuration.Observe(latency)
	}

	receipt := &Receipt{
		ID:            s.idGen.NewID(),
		CustomerID:    c.ID,
		Outcome:       result.Outcome,
		Total:         result.Total,
		FailedProduct: result.FailedProduct,
		CreatedAt:     time.Now().UTC(),
	}

	var publishErr error
	if result.Completed() {
		span.SetStatus(codes.Ok, "COMPLETED")
		publishErr = s.publish(ctx, store.NewPurchaseCompletedEvent(receipt.ID, c.ID, result.Total.StringFixed(2)))
	} else {
		span.SetStatus(codes.Error, string(result.Outcome))
		publishErr = s.publish(ctx, store.NewPurchaseFailedEvent(receipt.ID, c.ID, string(result.Outcome), result.FailedProduct))
	}
	span.End()

	fields := []zap.Field{
		zap.String("receipt_id", receipt.ID),
		zap.String("outcome", string(result.Outcome)),
		zap.Float64("latency_seconds", latency),
	}
	if result.Completed() {
		fields = append(fields, zap.String("total", result.Total.StringFixed(2)))
	}
	if result.FailedProduct != "" {
		fields = append(fields, zap.String("failed_product", result.FailedProduct))
	}
	logger.Info("purchase_processed", fields...)

	if publishErr != nil {
		return receipt, fmt.Errorf("checkout: publish result: %w", publishErr)
	}
	return receipt, nil
}

func (s *Service) publish(ctx context.Context, e event.Event) error {
	if s.publisher == nil || e == nil {
		return nil
	}
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return s.publisher.Publish(pubCtx, e)
}
