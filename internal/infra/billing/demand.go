package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/pkg/config"
	"adslot-booking/internal/pkg/errs"
)

// DemandClient raises payment demands against the billing service. One
// demand per booking, one detail line per reserved slot.
type DemandClient struct {
	httpClient      *http.Client
	createURL       string
	businessService string
	taxHeadCode     string
}

func NewDemandClient(cfg config.BillingConfig) *DemandClient {
	return &DemandClient{
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		createURL:       cfg.Host + cfg.DemandCreatePath,
		businessService: cfg.BusinessService,
		taxHeadCode:     cfg.TaxHeadCode,
	}
}

type createDemandRequest struct {
	Demands []demand `json:"Demands"`
}

type demand struct {
	TenantID        string         `json:"tenantId"`
	ConsumerCode    string         `json:"consumerCode"`
	ConsumerType    string         `json:"consumerType"`
	BusinessService string         `json:"businessService"`
	DemandDetails   []demandDetail `json:"demandDetails"`
}

type demandDetail struct {
	TaxHeadMasterCode string `json:"taxHeadMasterCode"`
	TenantID          string `json:"tenantId"`
}

func (c *DemandClient) CreateDemand(ctx context.Context, b *booking.Booking) error {
	details := make([]demandDetail, len(b.Slots()))
	for i := range b.Slots() {
		details[i] = demandDetail{
			TaxHeadMasterCode: c.taxHeadCode,
			TenantID:          b.Tenant().String(),
		}
	}
	body, err := json.Marshal(createDemandRequest{
		Demands: []demand{{
			TenantID:        b.Tenant().String(),
			ConsumerCode:    b.BookingNo(),
			ConsumerType:    c.businessService,
			BusinessService: c.businessService,
			DemandDetails:   details,
		}},
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode demand request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.createURL, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build demand request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "demand request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.New(fmt.Sprintf("billing service returned status %d", resp.StatusCode))
	}
	return nil
}
