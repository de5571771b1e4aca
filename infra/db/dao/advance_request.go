package dao

import (
	"fmt"

	"github.com/abjp/driver-payroll/infra/db/model"
)

func (d *dao) CreateAdvanceRequest(payload *model.AdvanceRequest) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save advance request: %w", err)
	}
	return nil
}

func (d *dao) ListAdvanceRequests() ([]model.AdvanceRequest, error) {
	var requests []model.AdvanceRequest
	if err := d.db.Order("data_envio DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list advance requests: %w", err)
	}
	return requests, nil
}
