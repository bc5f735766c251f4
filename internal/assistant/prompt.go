// Package assistant builds the natural-language prompt for the
// inventory chat interface. The LLM acts as a reasoning layer over the
// structured inventory snapshot embedded in the system prompt; this
// package only does the templating, it never calls a model.
package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/types"
)

// systemPromptTemplate defines the assistant's behavior and guardrails.
// The inventory snapshot is injected verbatim so the model can only
// cite data it was actually given.
const systemPromptTemplate = `You are an Inventory Assistant. Your role is to help users understand and query the inventory system using natural language.

## CAPABILITIES (what you CAN do):
- Answer questions about current inventory levels
- Identify low stock items (quantity < {{.LowStockThreshold}})
- Summarize inventory by category
- Explain what items are available or unavailable
- Provide counts and totals

## LIMITATIONS (what you CANNOT do):
- You CANNOT modify, add, or delete inventory items
- You CANNOT make purchases or orders
- You CANNOT access external systems or databases beyond what's provided
- You CANNOT guarantee real-time accuracy (data may be slightly stale)

## GUARDRAILS:
- If asked to modify inventory, politely explain you're read-only and direct users to the dashboard
- If asked about items not in the provided data, say "I don't have information about that item"
- Always cite the data provided to you, don't make up information
- Be concise and helpful

## CURRENT INVENTORY DATA:
{{.InventoryJSON}}

## INSTRUCTIONS:
Answer the user's question based ONLY on the inventory data provided above. Be helpful, accurate, and concise.
`

// ExampleQueries are canned questions used by the demo command.
var ExampleQueries = []string{
	"Which hardware items are low stock?",
	"How many categories exist in inventory?",
	"What items are currently available?",
	"How many total units do we have?",
	"List all software items",
}

// Prompt is the fully assembled request sent to a chat model.
type Prompt struct {
	System    string
	User      string
	Inventory []model.InventoryRecord
}

// Builder renders prompts around an inventory snapshot.
type Builder struct {
	lowStockThreshold int
	tmpl              *template.Template
}

// NewBuilder creates a Builder. The low-stock threshold is surfaced in
// the capabilities section so the model's definition matches reporting.
func NewBuilder(lowStockThreshold int) *Builder {
	return &Builder{
		lowStockThreshold: lowStockThreshold,
		tmpl:              template.Must(template.New("system").Parse(systemPromptTemplate)),
	}
}

// Build assembles the system prompt with the inventory embedded as JSON.
func (b *Builder) Build(userQuery string, inv []model.InventoryRecord) (Prompt, error) {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return Prompt{}, fmt.Errorf("marshal inventory: %w", err)
	}

	var sb strings.Builder
	err = b.tmpl.Execute(&sb, struct {
		LowStockThreshold int
		InventoryJSON     string
	}{
		LowStockThreshold: b.lowStockThreshold,
		InventoryJSON:     string(data),
	})
	if err != nil {
		return Prompt{}, fmt.Errorf("render system prompt: %w", err)
	}

	return Prompt{
		System:    sb.String(),
		User:      userQuery,
		Inventory: inv,
	}, nil
}

// FormatContext renders the inventory as a readable plain-text block,
// the human-facing counterpart of the JSON embedded in the prompt.
func (b *Builder) FormatContext(inv []model.InventoryRecord) string {
	var sb strings.Builder
	sb.WriteString("Current Inventory:\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n")

	for _, item := range inv {
		marker := "[available]"
		if item.Status != types.StatusAvailable {
			marker = "[unavailable]"
		}
		low := ""
		if item.Quantity < b.lowStockThreshold {
			low = " LOW"
		}
		fmt.Fprintf(&sb, "%s %s\n", marker, item.Name)
		fmt.Fprintf(&sb, "   Category: %s\n", item.Category)
		fmt.Fprintf(&sb, "   Quantity: %d%s\n\n", item.Quantity, low)
	}

	return sb.String()
}
