package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/car-deal-finder/pkg/condition"
)

// ConditionHandler exposes the condition classifier.
type ConditionHandler struct {
	classifier *condition.Classifier
}

// NewConditionHandler creates a new ConditionHandler.
func NewConditionHandler(c *condition.Classifier) *ConditionHandler {
	return &ConditionHandler{classifier: c}
}

// ClassifyInput is the text to classify.
type ClassifyInput struct {
	Body struct {
		Text  string `json:"text"            doc:"Free-text condition description" example:"Pæn bil men med rust"`
		Trace bool   `json:"trace,omitempty" doc:"Include the derivation trace"`
	}
}

// Classification is a condition score with its label.
type Classification struct {
	Score float64          `json:"score" doc:"Condition score in [0, 1]"`
	Label string           `json:"label" doc:"Human-readable condition label"`
	Trace *condition.Trace `json:"trace,omitempty"`
}

// ClassifyOutput is the response for the classify endpoint.
type ClassifyOutput struct {
	Body Classification
}

// Classify scores a condition description. Empty text yields the neutral
// score.
func (h *ConditionHandler) Classify(_ context.Context, input *ClassifyInput) (*ClassifyOutput, error) {
	s, trace := h.classifier.ClassifyString(input.Body.Text)

	out := &ClassifyOutput{Body: Classification{
		Score: s,
		Label: string(condition.Describe(s)),
	}}
	if input.Body.Trace {
		out.Body.Trace = &trace
	}
	return out, nil
}

// RegisterConditionRoutes registers the classifier endpoint with the Huma API.
func RegisterConditionRoutes(api huma.API, h *ConditionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "classify-condition",
		Method:      http.MethodPost,
		Path:        "/api/v1/condition/classify",
		Summary:     "Classify condition text",
		Description: "Scores a Danish condition description with the phrase lexicon.",
		Tags:        []string{"scoring"},
	}, h.Classify)
}
