package mdms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"adslot-booking/internal/pkg/config"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/commands"
)

const moduleName = "Advertisement"

var masterNames = []string{"AdType", "Location", "FaceArea"}

// Client fetches advertisement master data from the MDMS service. Masters
// are keyed by the tenant's root: sub-tenants inherit the city-level data.
type Client struct {
	httpClient *http.Client
	searchURL  string
}

func NewClient(cfg config.MdmsConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		searchURL:  cfg.Host + cfg.SearchPath,
	}
}

type searchRequest struct {
	Criteria searchCriteria `json:"MdmsCriteria"`
}

type searchCriteria struct {
	TenantID      string         `json:"tenantId"`
	ModuleDetails []moduleDetail `json:"moduleDetails"`
}

type moduleDetail struct {
	ModuleName    string         `json:"moduleName"`
	MasterDetails []masterDetail `json:"masterDetails"`
}

type masterDetail struct {
	Name string `json:"name"`
}

type searchResponse struct {
	Res map[string]map[string][]masterEntry `json:"MdmsRes"`
}

type masterEntry struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (c *Client) Fetch(ctx context.Context, tenantID string) (commands.MasterDataSnapshot, error) {
	details := make([]masterDetail, len(masterNames))
	for i, name := range masterNames {
		details[i] = masterDetail{Name: name}
	}
	body, err := json.Marshal(searchRequest{
		Criteria: searchCriteria{
			TenantID:      tenantID,
			ModuleDetails: []moduleDetail{{ModuleName: moduleName, MasterDetails: details}},
		},
	})
	if err != nil {
		return commands.MasterDataSnapshot{}, errs.Wrap(err, "failed to encode mdms request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, bytes.NewReader(body))
	if err != nil {
		return commands.MasterDataSnapshot{}, errs.Wrap(err, "failed to build mdms request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return commands.MasterDataSnapshot{}, errs.Wrap(err, "mdms request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return commands.MasterDataSnapshot{}, errs.New(fmt.Sprintf("mdms returned status %d", resp.StatusCode))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return commands.MasterDataSnapshot{}, errs.Wrap(err, "failed to decode mdms response")
	}

	masters := decoded.Res[moduleName]
	return commands.MasterDataSnapshot{
		AdTypes:   activeNames(masters["AdType"]),
		Locations: activeNames(masters["Location"]),
		FaceAreas: activeNames(masters["FaceArea"]),
	}, nil
}

func activeNames(entries []masterEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Active {
			names = append(names, e.Name)
		}
	}
	return names
}
