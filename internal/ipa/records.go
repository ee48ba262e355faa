package ipa

import (
	"context"
	"fmt"

	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
)

// FindRecord fetches the record named name in the given zone.
// A record that does not exist is an expected outcome and is
// signaled with found set to false, not with an error.
func (c *Client) FindRecord(ctx context.Context, zone, name string) (
	record dnsrecord.Record, found bool, err error) {
	// all fetches every record field, not only the primary key.
	keywords := map[string]any{"idnsname": name, "all": true}

	var result struct {
		Count   uint               `json:"count"`
		Records []dnsrecord.Record `json:"result"`
	}
	err = c.postJSON(ctx, "dnsrecord_find", zone, keywords, &result)
	if err != nil {
		return nil, false, fmt.Errorf("finding record: %w", err)
	}

	if result.Count == 0 || len(result.Records) == 0 {
		return nil, false, nil
	}

	return result.Records[0], true, nil
}

// AddRecord creates the record with the given fields, which must
// follow the add-time field convention.
func (c *Client) AddRecord(ctx context.Context, zone, name string,
	fields map[string]string) (record dnsrecord.Record, err error) {
	record, err = c.mutateRecord(ctx, "dnsrecord_add", zone, name, fields)
	if err != nil {
		return nil, fmt.Errorf("adding record: %w", err)
	}
	return record, nil
}

// ModRecord overwrites record fields, which must follow the
// storage field convention.
func (c *Client) ModRecord(ctx context.Context, zone, name string,
	fields map[string]string) (record dnsrecord.Record, err error) {
	record, err = c.mutateRecord(ctx, "dnsrecord_mod", zone, name, fields)
	if err != nil {
		return nil, fmt.Errorf("modifying record: %w", err)
	}
	return record, nil
}

// DelRecord removes the record values given in fields, which must
// follow the storage field convention. The fields disambiguate
// which value to remove when the record holds multiple values.
func (c *Client) DelRecord(ctx context.Context, zone, name string,
	fields map[string]string) (record dnsrecord.Record, err error) {
	record, err = c.mutateRecord(ctx, "dnsrecord_del", zone, name, fields)
	if err != nil {
		return nil, fmt.Errorf("deleting record: %w", err)
	}
	return record, nil
}

func (c *Client) mutateRecord(ctx context.Context, method, zone, name string,
	fields map[string]string) (record dnsrecord.Record, err error) {
	keywords := make(map[string]any, 1+len(fields))
	keywords["idnsname"] = name
	for field, value := range fields {
		keywords[field] = value
	}

	var result struct {
		Record dnsrecord.Record `json:"result"`
	}
	err = c.postJSON(ctx, method, zone, keywords, &result)
	if err != nil {
		return nil, err
	}

	return result.Record, nil
}
