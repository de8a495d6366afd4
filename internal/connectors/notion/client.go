// Package notion implements the destination database port: one Notion
// page per payslip in a fixed database.
package notion

import (
	"context"
	"fmt"
	"sort"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driven"
)

// Notion's documented average limit is 3 requests per second per
// integration.
const requestsPerSecond = 3

// Ensure Client implements the interface.
var _ driven.RecordStore = (*Client)(nil)

// Client implements driven.RecordStore against one Notion database.
type Client struct {
	api        *notionapi.Client
	limiter    *rate.Limiter
	databaseID notionapi.DatabaseID
}

// NewClient creates a Client for the given integration token and
// database id.
func NewClient(token, databaseID string) *Client {
	return &Client{
		api:        notionapi.NewClient(notionapi.Token(token)),
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		databaseID: notionapi.DatabaseID(databaseID),
	}
}

// CreateRecord writes one payslip page to the database. Failures wrap
// domain.ErrRecordCreate with the file identity so the batch can report
// and continue.
func (c *Client) CreateRecord(ctx context.Context, p *domain.Payslip) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	props, err := recordProperties(p)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrRecordCreate, p.FileName, err)
	}

	_, err = c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: c.databaseID,
		},
		Properties: props,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrRecordCreate, p.FileName, err)
	}
	return nil
}

// Schema returns the database's property names mapped to their types,
// sorted output left to the caller.
func (c *Client) Schema(ctx context.Context) (map[string]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	db, err := c.api.Database.Get(ctx, c.databaseID)
	if err != nil {
		return nil, fmt.Errorf("retrieving database schema: %w", err)
	}

	schema := make(map[string]string, len(db.Properties))
	for name, cfg := range db.Properties {
		schema[name] = string(cfg.GetType())
	}
	return schema, nil
}

// SortedPropertyNames returns a schema's property names in stable order.
func SortedPropertyNames(schema map[string]string) []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
