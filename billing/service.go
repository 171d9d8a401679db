package billing

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/jewelcraft/jewel-billing/billing/business/bill"
	"github.com/jewelcraft/jewel-billing/billing/business/payment"
	catalog "github.com/jewelcraft/jewel-billing/billing/client"
	"github.com/jewelcraft/jewel-billing/billing/domain"
	"github.com/jewelcraft/jewel-billing/billing/identifier"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/workflow"
)

var billingDB = sqldb.NewDatabase("jewel_billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

type pinger interface {
	Ping(ctx context.Context) error
}

//encore:service
type Service struct {
	business bill.Business
	payments payment.Business

	// temporal is nil unless bill expiry is enabled.
	temporal     client.Client
	worker       worker.Worker
	taskQueue    string
	expiryWindow time.Duration

	db pinger
}

func initService() (*Service, error) {
	pool := sqldb.Driver[*pgxpool.Pool](billingDB)
	repo := store.NewStore(pool)

	stateMachine := domain.NewBillStateMachine(pool, repo)
	ids := identifier.NewGenerator()
	catalogClient := catalog.NewCatalog(catalog.Config{
		CustomerBaseURL: cfg.CustomerServiceURL,
		ProductBaseURL:  cfg.ProductServiceURL,
		Timeout:         cfg.lookupTimeout(),
	})

	svc := &Service{
		business: bill.NewBillBusiness(repo, catalogClient, catalogClient, ids, stateMachine),
		payments: payment.NewPaymentBusiness(repo, ids, stateMachine),
		db:       pool,
	}

	if !cfg.BillExpiry.Enabled {
		rlog.Info("bill expiry disabled")
		return svc, nil
	}

	if err := svc.startTemporal(); err != nil {
		return nil, err
	}
	return svc, nil
}

// startTemporal connects to Temporal and runs the bill expiry worker.
func (s *Service) startTemporal() error {
	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		return fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(s.business)

	w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.BillExpiry)
	w.RegisterActivity(workflow.ExpireBillActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return fmt.Errorf("start temporal worker: %w", err)
	}

	s.temporal = c
	s.worker = w
	s.taskQueue = cfg.Temporal.TaskQueue
	s.expiryWindow = cfg.expiryWindow()

	rlog.Info("bill expiry enabled", "task_queue", s.taskQueue, "window", s.expiryWindow.String())
	return nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
