package notion

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QueryResponse is one page of a database query. It is constructed per
// network round trip and discarded once its results are copied into the
// caller's accumulator.
type QueryResponse struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
	Type       string  `json:"type"`
	RequestID  string  `json:"request_id"`
}

// Page is one raw database record: an envelope of metadata around an opaque,
// partially populated property bag.
type Page struct {
	Object         string     `json:"object"`
	ID             uuid.UUID  `json:"id"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	Archived       bool       `json:"archived"`
	InTrash        bool       `json:"in_trash"`
	Properties     Properties `json:"properties"`
	URL            string     `json:"url"`
}

// Properties holds a record's property bag keyed by property name. Values are
// kept raw and decoded lazily per property, so one undecodable property only
// fails its own record.
type Properties map[string]json.RawMessage

// Property value shapes. Pointer members keep "present but empty" and
// "absent" both representable as nil after extraction.
type titleProperty struct {
	Title []struct {
		Text struct {
			Content *string `json:"content"`
		} `json:"text"`
	} `json:"title"`
}

type selectProperty struct {
	Select *struct {
		Name *string `json:"name"`
	} `json:"select"`
}

type numberProperty struct {
	Number *float64 `json:"number"`
}

// TitleText extracts the first title fragment's text content. An absent
// property, empty title list, or empty text object yields nil; only a
// structurally undecodable property value is an error.
func (p Properties) TitleText(name string) (*string, error) {
	raw, ok := p[name]
	if !ok {
		return nil, nil
	}
	var prop titleProperty
	if err := json.Unmarshal(raw, &prop); err != nil {
		return nil, fmt.Errorf("%w: property %q: %v", ErrMalformedRecord, name, err)
	}
	if len(prop.Title) == 0 {
		return nil, nil
	}
	return prop.Title[0].Text.Content, nil
}

// SelectName extracts the selected option's name. A null select, or a select
// object carrying no name, is treated the same as an absent property.
func (p Properties) SelectName(name string) (*string, error) {
	raw, ok := p[name]
	if !ok {
		return nil, nil
	}
	var prop selectProperty
	if err := json.Unmarshal(raw, &prop); err != nil {
		return nil, fmt.Errorf("%w: property %q: %v", ErrMalformedRecord, name, err)
	}
	if prop.Select == nil {
		return nil, nil
	}
	return prop.Select.Name, nil
}

// Number extracts a numeric property value, nil when absent or null.
func (p Properties) Number(name string) (*float64, error) {
	raw, ok := p[name]
	if !ok {
		return nil, nil
	}
	var prop numberProperty
	if err := json.Unmarshal(raw, &prop); err != nil {
		return nil, fmt.Errorf("%w: property %q: %v", ErrMalformedRecord, name, err)
	}
	return prop.Number, nil
}
