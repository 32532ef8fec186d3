package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/contract"
	"github.com/sbexpress/hris-backend-go/internal/pkg/metrics"
)

// ContractJobs keeps the contract status gauges current and logs contracts that need action
type ContractJobs struct {
	contractService contract.ContractService
	recorder        *metrics.Recorder
	now             func() time.Time
}

func NewContractJobs(contractService contract.ContractService, recorder *metrics.Recorder) *ContractJobs {
	return &ContractJobs{
		contractService: contractService,
		recorder:        recorder,
		now:             time.Now,
	}
}

func (j *ContractJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("contract_expiry_sweep", interval, j.SweepContracts)
}

// SweepContracts classifies every active contract and publishes the bucket sizes
func (j *ContractJobs) SweepContracts(ctx context.Context) error {
	result, err := j.contractService.Batch(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to classify contracts: %w", err)
	}

	j.recorder.ContractStatus(map[string]int{
		string(contract.StatusActive):   len(result.Active),
		string(contract.StatusExpiring): len(result.Expiring),
		string(contract.StatusUrgent):   len(result.Urgent),
		string(contract.StatusExpired):  len(result.Expired),
	})

	for _, item := range result.Urgent {
		slog.Warn("Contract ending soon",
			"employee_id", item.EmployeeID,
			"location", item.Location,
			"end_date", item.EndDate,
			"days_remaining", item.DaysRemaining,
		)
	}

	slog.Info("Cron: contract sweep finished",
		"total", result.Total(),
		"urgent", len(result.Urgent),
		"expiring", len(result.Expiring),
		"expired", len(result.Expired),
	)
	return nil
}
