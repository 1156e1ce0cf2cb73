package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	instance     *ServerInstance
	tenantID     string
	response     *http.Response
	responseBody []byte
}

// NewStepsContext creates a new steps context
func NewStepsContext() *StepsContext {
	return &StepsContext{}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a console for tenant "([^"]*)" with role "([^"]*)"$`, s.aConsoleForTenantWithRole)
	sc.Step(`^the following producers exist:$`, s.theFollowingProducersExist)
	sc.Step(`^tenant "([^"]*)" has a producer "([^"]*)" named "([^"]*)"$`, s.tenantHasAProducer)

	// Request steps
	sc.Step(`^I send a (GET|POST|PUT|PATCH|DELETE) request to "([^"]*)"$`, s.iSendARequestTo)
	sc.Step(`^I send a (POST|PUT|PATCH) request to "([^"]*)" with:$`, s.iSendARequestWithBody)
	sc.Step(`^I switch to role "([^"]*)"$`, s.iSwitchToRole)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should list producers "([^"]*)"$`, s.theResponseShouldListProducers)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
	sc.Step(`^the offered actions for "([^"]*)" should be "([^"]*)"$`, s.theOfferedActionsShouldBe)

	// Store steps
	sc.Step(`^producer "([^"]*)" should have status "([^"]*)"$`, s.producerShouldHaveStatus)
	sc.Step(`^producer "([^"]*)" should still exist$`, s.producerShouldStillExist)
	sc.Step(`^producer "([^"]*)" should not exist$`, s.producerShouldNotExist)
	sc.Step(`^the audit log should contain "([^"]*)"$`, s.theAuditLogShouldContain)
}

// Background steps

func (s *StepsContext) aConsoleForTenantWithRole(tenantID, role string) error {
	s.tenantID = tenantID
	s.instance = StartServer(tenantID, rbac.Role(role))
	return nil
}

func (s *StepsContext) theFollowingProducersExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("producer table needs a header and at least one row")
	}

	header := table.Rows[0].Cells
	producers := make([]model.Producer, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		p := model.Producer{
			TenantID: s.tenantID,
			Type:     model.ProducerTypeIndividual,
			Serasa:   "1/5",
			EUDR:     "1/4",
		}
		for i, cell := range row.Cells {
			if err := setField(&p, header[i].Value, cell.Value); err != nil {
				return err
			}
		}
		producers = append(producers, p)
	}
	return s.instance.Store.Seed(producers...)
}

func (s *StepsContext) tenantHasAProducer(tenantID, id, name string) error {
	return s.instance.Store.Seed(model.Producer{
		ID:       id,
		TenantID: tenantID,
		Name:     name,
		Type:     model.ProducerTypeFarmGroup,
		Serasa:   "2/5",
		EUDR:     "2/4",
	})
}

func setField(p *model.Producer, column, value string) error {
	switch column {
	case "id":
		p.ID = value
	case "name":
		p.Name = value
	case "status":
		status, ok := model.ParseStatus(value)
		if !ok {
			return fmt.Errorf("unknown status %q", value)
		}
		p.Status = status
	case "type":
		pt, ok := model.ParseProducerType(value)
		if !ok {
			return fmt.Errorf("unknown producer type %q", value)
		}
		p.Type = pt
	case "eudr":
		p.EUDR = model.Coverage(value)
	case "serasa":
		p.Serasa = model.Coverage(value)
	default:
		return fmt.Errorf("unknown producer column %q", column)
	}
	return nil
}

// Request steps

func (s *StepsContext) iSendARequestTo(method, path string) error {
	return s.do(method, path, nil)
}

func (s *StepsContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	return s.do(method, path, strings.NewReader(body.Content))
}

func (s *StepsContext) iSwitchToRole(role string) error {
	if err := s.do("PUT", "/session/role", strings.NewReader(fmt.Sprintf(`{"role":%q}`, role))); err != nil {
		return err
	}
	return s.theResponseStatusShouldBe(http.StatusOK)
}

func (s *StepsContext) do(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, s.instance.ServerURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.response, err = s.instance.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldListProducers(ids string) error {
	var listing struct {
		Items []model.Producer `json:"items"`
	}
	if err := json.Unmarshal(s.responseBody, &listing); err != nil {
		return fmt.Errorf("failed to parse listing: %w", err)
	}

	got := make([]string, 0, len(listing.Items))
	for _, p := range listing.Items {
		got = append(got, p.ID)
	}
	if strings.Join(got, ",") != ids {
		return fmt.Errorf("expected producers %q, got %q", ids, strings.Join(got, ","))
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBe(field, expected string) error {
	var body map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	value, ok := body[field]
	if !ok {
		return fmt.Errorf("response has no field %q: %s", field, string(s.responseBody))
	}
	if got := fmt.Sprint(value); got != expected {
		return fmt.Errorf("expected %s to be %q, got %q", field, expected, got)
	}
	return nil
}

func (s *StepsContext) theOfferedActionsShouldBe(id, expected string) error {
	var listing struct {
		Actions map[string][]string `json:"actions"`
	}
	if err := json.Unmarshal(s.responseBody, &listing); err != nil {
		return fmt.Errorf("failed to parse listing: %w", err)
	}

	actions, ok := listing.Actions[id]
	if !ok {
		return fmt.Errorf("no actions listed for %s", id)
	}
	if got := strings.Join(actions, ","); got != expected {
		return fmt.Errorf("expected actions %q for %s, got %q", expected, id, got)
	}
	return nil
}

// Store steps

func (s *StepsContext) producerShouldHaveStatus(id, status string) error {
	p, ok := s.instance.Store.Get(s.tenantID, id)
	if !ok {
		return fmt.Errorf("producer %s does not exist", id)
	}
	if p.Status.String() != status {
		return fmt.Errorf("expected %s to be %q, got %q", id, status, p.Status)
	}
	return nil
}

func (s *StepsContext) producerShouldStillExist(id string) error {
	for _, tenant := range []string{s.tenantID, "tenant-2"} {
		if _, ok := s.instance.Store.Get(tenant, id); ok {
			return nil
		}
	}
	return fmt.Errorf("producer %s was removed", id)
}

func (s *StepsContext) producerShouldNotExist(id string) error {
	if _, ok := s.instance.Store.Get(s.tenantID, id); ok {
		return fmt.Errorf("producer %s still exists", id)
	}
	return nil
}

func (s *StepsContext) theAuditLogShouldContain(text string) error {
	if !strings.Contains(s.instance.Audit.String(), text) {
		return fmt.Errorf("audit log does not contain %q:\n%s", text, s.instance.Audit.String())
	}
	return nil
}
