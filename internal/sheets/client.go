package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client is the append-only tabular destination. The worksheet's first row
// is the header; everything below is positional data trusted as-is.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

func Open(ctx context.Context, credentialsFile, spreadsheetID, worksheet string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// ReadAll maps every data row by the header row's column names. Cells past
// the header width are dropped; short rows simply omit the trailing keys.
func (c *Client) ReadAll(ctx context.Context) ([]map[string]string, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, c.worksheet).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s!%s: %w", c.spreadsheetID, c.worksheet, err)
	}

	if len(resp.Values) < 2 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = fmt.Sprint(cell)
	}

	out := make([]map[string]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(map[string]string, len(header))
		for i, cell := range raw {
			if i >= len(header) {
				break
			}
			row[header[i]] = fmt.Sprint(cell)
		}
		out = append(out, row)
	}
	return out, nil
}

func (c *Client) Append(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		vals := make([]any, len(row))
		for j, cell := range row {
			vals[j] = cell
		}
		values[i] = vals
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, c.worksheet, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %d rows to %s!%s: %w", len(rows), c.spreadsheetID, c.worksheet, err)
	}
	return nil
}
