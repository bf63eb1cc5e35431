//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	paymentGateway "mozcommerce/internal/gateway/payment"
	"mozcommerce/internal/gateway/whatsapp"
	"mozcommerce/internal/handlers/rest/delivery_confirm_post"
	"mozcommerce/internal/handlers/rest/order_get"
	"mozcommerce/internal/handlers/rest/order_post"
	"mozcommerce/internal/handlers/rest/order_submit_post"
	"mozcommerce/internal/handlers/rest/orders_get"
	"mozcommerce/internal/handlers/tasks/payment_reconcile"
	"mozcommerce/internal/pkg/config"

	orderRepo "mozcommerce/internal/repository/order"
	orderService "mozcommerce/internal/service/order"
	riskService "mozcommerce/internal/service/risk"

	"mozcommerce/pkg/background"
	"mozcommerce/pkg/logger"
	"mozcommerce/pkg/querier"
	"mozcommerce/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

// 5% платформенной комиссии, когда PAYMENTS_COMMISSION_RATE не задан
const defaultCommissionRate = 0.05

const httpClientTimeout = 10 * time.Second

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_submit_post.Service
	delivery_confirm_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideOrderRepository,

		provideHTTPClient,
		providePaymentGateway,
		provideWhatsAppClient,
		provideNotifier,

		provideRiskEvaluator,
		provideServiceOrder,

		providePaymentReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.RiskEvaluator), new(*riskService.Evaluator)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.PaymentGateway)),
		wire.Bind(new(orderService.Notifier), new(*whatsapp.Notifier)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(payment_reconcile.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-confirmed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,

		provideHTTPClient,
		providePaymentGateway,
		provideWhatsAppClient,
		provideNotifier,

		provideRiskEvaluator,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.RiskEvaluator), new(*riskService.Evaluator)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.PaymentGateway)),
		wire.Bind(new(orderService.Notifier), new(*whatsapp.Notifier)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: httpClientTimeout}
}

func providePaymentGateway(client *http.Client, cfg *config.Config) *paymentGateway.PaymentGateway {
	return paymentGateway.New(client, paymentGateway.Config{
		BaseURL: cfg.Payments.GatewayBaseURL,
		APIKey:  cfg.Payments.GatewayAPIKey,
	})
}

func provideWhatsAppClient(client *http.Client, cfg *config.Config) *whatsapp.Client {
	return whatsapp.NewClient(client, whatsapp.Config{
		BaseURL: cfg.WhatsApp.BaseURL,
		Token:   cfg.WhatsApp.Token,
	})
}

func provideNotifier(client *whatsapp.Client, log logger.Logger) *whatsapp.Notifier {
	return whatsapp.NewNotifier(client, log)
}

func provideRiskEvaluator(cfg *config.Config) *riskService.Evaluator {
	riskConfig := riskService.DefaultConfig()
	if cfg.Risk.HighAmountThreshold > 0 {
		riskConfig.HighAmountThreshold = cfg.Risk.HighAmountThreshold
	}
	if cfg.Risk.VeryHighAmountThreshold > 0 {
		riskConfig.VeryHighAmountThreshold = cfg.Risk.VeryHighAmountThreshold
	}
	if cfg.Risk.ApprovalThreshold > 0 {
		riskConfig.ApprovalThreshold = cfg.Risk.ApprovalThreshold
	}
	return riskService.New(riskConfig)
}

func provideServiceOrder(
	repository orderService.Repository,
	risk orderService.RiskEvaluator,
	gateway orderService.PaymentGateway,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
	cfg *config.Config,
) *orderService.Service {
	commissionRate := cfg.Payments.CommissionRate
	if commissionRate == 0 {
		commissionRate = defaultCommissionRate
	}

	return orderService.New(repository, risk, gateway, notifier, txManager, orderService.Config{
		CommissionRate:  commissionRate,
		ReconcileWindow: cfg.Payments.ReconcileWindow,
	})
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.PaymentReconcileInterval)
}

func providePaymentReconcileTask(
	log logger.Logger,
	orderService payment_reconcile.Service,
	interval ReconcileInterval,
) *payment_reconcile.PaymentReconcile {
	return payment_reconcile.NewPaymentReconcile(log, orderService, time.Duration(interval))
}

func provideTaskList(
	paymentReconcileTask *payment_reconcile.PaymentReconcile,
) []background.Task {
	return []background.Task{
		paymentReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
