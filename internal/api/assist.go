package api

import "context"

// Assist modes understood by the backend
const (
	AssistGeneral     = "general"
	AssistIdeas       = "ideas"
	AssistSummary     = "summary"
	AssistDescription = "description"
)

// AssistRequest is a prompt for the AI endpoint. Either Prompt or ProjectID
// must be set; ProjectID pulls the project's tasks into the model context.
type AssistRequest struct {
	Prompt    string `json:"prompt,omitempty"`
	ProjectID *int64 `json:"project_id,omitempty"`
	Mode      string `json:"mode"`
}

// Assist sends a prompt to the AI endpoint and returns the generated text
func (c *Client) Assist(ctx context.Context, req AssistRequest) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/ai/assist", req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
