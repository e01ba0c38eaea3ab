package model

import (
	"github.com/google/uuid"
)

// MaterialityItem is a single issue, risk or opportunity (IRO) to plot.
// One item corresponds to one row of the input spreadsheet.
type MaterialityItem struct {
	Name     string
	Impact   float64
	Risk     float64
	SubTopic string
}

// DatasetID is a UUID-based identifier assigned when a dataset is constructed.
// It only appears in logs; it is never part of any figure or response.
type DatasetID string

// NewDatasetID generates a new UUID v4 DatasetID
func NewDatasetID() DatasetID {
	return DatasetID(uuid.New().String())
}

// String returns the string representation of DatasetID
func (d DatasetID) String() string {
	return string(d)
}

// Dataset is a row-ordered collection of materiality items. A dataset lives
// for a single request: it is parsed (or taken from the startup default),
// turned into exactly one figure, and discarded.
type Dataset struct {
	ID    DatasetID
	Items []MaterialityItem
}

// NewDataset wraps items into a Dataset with a fresh ID
func NewDataset(items []MaterialityItem) *Dataset {
	return &Dataset{
		ID:    NewDatasetID(),
		Items: items,
	}
}

// Len returns the number of items in the dataset
func (d *Dataset) Len() int {
	return len(d.Items)
}

// SubTopics returns the distinct sub-topic labels in first-appearance order
func (d *Dataset) SubTopics() []string {
	seen := make(map[string]bool, len(d.Items))
	var topics []string
	for _, item := range d.Items {
		if !seen[item.SubTopic] {
			seen[item.SubTopic] = true
			topics = append(topics, item.SubTopic)
		}
	}
	return topics
}
