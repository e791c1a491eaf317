package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DevSender writes each delivery as a JSON file instead of sending it.
type DevSender struct {
	dir string
	now func() time.Time
}

func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devRecord struct {
	Timestamp  string `json:"timestamp"`
	ServiceID  string `json:"service_id"`
	TemplateID string `json:"template_id"`
	Params     Params `json:"params"`
}

func (d *DevSender) Send(ctx context.Context, serviceID, templateID string, params Params) error {
	if err := checkRequest(ProviderDev, serviceID, templateID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return deliveryError(ProviderDev, serviceID, templateID, err)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return deliveryError(ProviderDev, serviceID, templateID, err)
	}

	now := d.now()
	data, err := json.MarshalIndent(devRecord{
		Timestamp:  now.Format(time.RFC3339),
		ServiceID:  serviceID,
		TemplateID: templateID,
		Params:     params,
	}, "", "  ")
	if err != nil {
		return deliveryError(ProviderDev, serviceID, templateID, err)
	}

	name := fmt.Sprintf("%s_%s.json", now.Format("2006_01_02_150405.000000000"), templateID)
	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0o644); err != nil {
		return deliveryError(ProviderDev, serviceID, templateID, err)
	}
	return nil
}
