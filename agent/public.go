package agent

import (
	"context"
	"slices"

	"github.com/etnz/splitbook"
	"github.com/etnz/splitbook/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user shares day-to-day expenses with one other person through a
			common tab. They are here primarily to understand what was spent,
			by whom, and who currently owes whom.

			Learn about the expert's skills from the Tools and ask them
			questions. They are at your service and 100% dedicated to you, they
			keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the
			best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// NewBookkeeper creates the expert in charge of reading the shared tab. It
// answers from the given snapshot through function calls; it never appends.
func NewBookkeeper(ledger *splitbook.Ledger, parties splitbook.Parties, currency string) *Expert {
	history := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "History",
			Description: "History lists every visible memo of the shared tab as a markdown table: payments with payer, payees and amount, and free-text notes. Cancelled memos are excluded.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"latest_first": {
						Type:        genai.TypeBoolean,
						Description: "List the most recent memos first. Defaults to false (oldest first).",
					},
				},
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			reverse, _ := args["latest_first"].(bool)
			records := slices.Collect(ledger.History(reverse))
			return &genai.FunctionResponse{
				ID:   id,
				Name: "History",
				Response: map[string]any{
					"output": renderer.History(records, currency),
				},
			}
		},
	}

	balance := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Balance",
			Description: "Balance returns what each party has paid in total and the outstanding net debt between the two parties.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			proj := splitbook.NewProjection(ledger, parties)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Balance",
				Response: map[string]any{
					"output": renderer.Summary(proj, parties, currency),
				},
			}
		},
	}

	lib := []Function{history, balance}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper, in charge of reading the shared tab.
		The Bookkeeper can list the history of payments and notes, and compute
		the totals and the outstanding debt between the two parties.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of a tab shared by two people.
				You know how to use the Tools to extract the tab's history and
				its balance. You are part of a team of experts; pardon their
				approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}
