package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

type fakeModels struct {
	calls []modelsCall
	resp  *genai.GenerateContentResponse
	err   error
}

type modelsCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, modelsCall{model: model, contents: contents, config: config})
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestGeneratorSendsSystemInstruction(t *testing.T) {
	models := &fakeModels{resp: textResponse("Study data science.")}
	g := &Generator{models: models, modelName: DefaultModel}

	output, err := g.GenerateContent(context.Background(), "system", "message")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "Study data science." {
		t.Fatalf("unexpected output: %q", output)
	}

	if len(models.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(models.calls))
	}

	call := models.calls[0]
	if call.model != DefaultModel {
		t.Fatalf("unexpected model: %s", call.model)
	}
	if call.config == nil || call.config.SystemInstruction == nil {
		t.Fatalf("expected system instruction to be set")
	}
	if got := call.config.SystemInstruction.Parts[0].Text; got != "system" {
		t.Fatalf("unexpected system instruction: %q", got)
	}
	if len(call.contents) != 1 || call.contents[0].Parts[0].Text != "message" {
		t.Fatalf("unexpected contents: %+v", call.contents)
	}
}

func TestGeneratorConcatenatesFirstCandidate(t *testing.T) {
	resp := textResponse("Data science ", "", "is growing.")
	resp.Candidates = append(resp.Candidates, textResponse("ignored").Candidates...)

	models := &fakeModels{resp: resp}
	g := &Generator{models: models, modelName: DefaultModel}

	output, err := g.GenerateContent(context.Background(), "", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "Data science is growing." {
		t.Fatalf("unexpected output: %q", output)
	}
	if models.calls[0].config != nil {
		t.Fatalf("expected no config without a system instruction")
	}
}

func TestGeneratorEmptyResponse(t *testing.T) {
	g := &Generator{models: &fakeModels{resp: &genai.GenerateContentResponse{}}, modelName: DefaultModel}

	if _, err := g.GenerateContent(context.Background(), "sys", "msg"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestGeneratorWrapsAPIError(t *testing.T) {
	apiErr := genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}
	g := &Generator{models: &fakeModels{err: apiErr}, modelName: DefaultModel}

	_, err := g.GenerateContent(context.Background(), "sys", "msg")

	var target genai.APIError
	if !errors.As(err, &target) {
		t.Fatalf("expected wrapped APIError, got %v", err)
	}
	if target.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected code: %d", target.Code)
	}
}

func TestNilGenerator(t *testing.T) {
	var g *Generator
	if _, err := g.GenerateContent(context.Background(), "sys", "msg"); err == nil {
		t.Fatal("expected error for nil generator")
	}
	if g.Model() != "" {
		t.Fatal("expected empty model for nil generator")
	}
}
