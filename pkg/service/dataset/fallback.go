package dataset

import (
	"github.com/secmon-lab/materia/pkg/domain/model"
)

// Fallback returns the built-in sample dataset used when the bundled
// template workbook is missing, unreadable, empty or schema-invalid.
// The items mirror the rows shipped in the template so the map never
// starts blank.
func Fallback() *model.Dataset {
	return model.NewDataset([]model.MaterialityItem{
		{Name: "Energy Efficiency", Impact: 4, Risk: 5, SubTopic: "Environmental"},
		{Name: "Water Use", Impact: 3, Risk: 2, SubTopic: "Environmental"},
		{Name: "Labor Practices", Impact: 5, Risk: 4, SubTopic: "Social"},
		{Name: "GHG Emissions", Impact: 5, Risk: 5, SubTopic: "Environmental"},
		{Name: "Diversity & Inclusion", Impact: 2, Risk: 3, SubTopic: "Social"},
		{Name: "Product Safety", Impact: 4, Risk: 3, SubTopic: "Social"},
		{Name: "Supply Chain Ethics", Impact: 3, Risk: 2, SubTopic: "Social"},
		{Name: "Board Independence", Impact: 1, Risk: 1, SubTopic: "Governance"},
		{Name: "Climate Risk Strategy", Impact: 5, Risk: 5, SubTopic: "Environmental"},
		{Name: "Customer Privacy", Impact: 2, Risk: 4, SubTopic: "Governance"},
	})
}
