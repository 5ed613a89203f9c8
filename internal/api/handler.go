package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eugenenazirov/party-planner/internal/catalog"
	"github.com/eugenenazirov/party-planner/internal/party"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires calculator and catalog dependencies into HTTP handlers.
type Handler struct {
	calculator party.Calculator
	catalog    catalog.Catalog

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc party.Calculator, items catalog.Catalog, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator: calc,
		catalog:    items,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetItems(w http.ResponseWriter, r *http.Request) {
	_ = r
	items, err := h.catalog.Items()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := itemsResponse{Items: make([]itemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, newItemResponse(party.SelectedItem{Item: item, Binary: party.Binary(item.Value)}))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetPartyCode(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("indices")
	indices, err := party.ParseSelection(raw, h.catalog.Len())
	h.respondPartyCode(w, raw, indices, err)
}

func (h *Handler) handlePostPartyCode(w http.ResponseWriter, r *http.Request) {
	var req partyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	indices, err := req.Indices.resolve(h.catalog.Len())
	h.respondPartyCode(w, req.Indices.raw, indices, err)
}

func (h *Handler) respondPartyCode(w http.ResponseWriter, raw string, indices []int, parseErr error) {
	if parseErr != nil && !errors.Is(parseErr, party.ErrMalformedSelection) {
		writeInternalError(w, parseErr)
		return
	}

	items, err := h.catalog.Items()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	result := h.calculator.Compute(items, indices)
	resp := newPartyCodeResponse(raw, indices, result)
	if parseErr != nil {
		resp.Valid = false
		resp.Details = parseErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// selectionField accepts either a comma-separated string or an array of integers.
type selectionField struct {
	raw     string
	indices []int
	isList  bool
}

func (s *selectionField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		s.isList = true
		return json.Unmarshal(data, &s.indices)
	}
	if err := json.Unmarshal(data, &s.raw); err != nil {
		return fmt.Errorf("indices must be a string or an array of integers: %w", err)
	}
	return nil
}

func (s selectionField) resolve(catalogLen int) ([]int, error) {
	if s.isList {
		return party.FilterIndices(s.indices, catalogLen), nil
	}
	return party.ParseSelection(s.raw, catalogLen)
}

type partyCodeRequest struct {
	Indices selectionField `json:"indices"`
}

type itemResponse struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Binary string `json:"binary"`
}

func newItemResponse(item party.SelectedItem) itemResponse {
	return itemResponse{
		Index:  item.Index,
		Name:   item.Name,
		Value:  item.Value,
		Binary: item.Binary,
	}
}

type itemsResponse struct {
	Items []itemResponse `json:"items"`
}

type stepResponse struct {
	Left       int    `json:"left"`
	Right      int    `json:"right"`
	Result     int    `json:"result"`
	Expression string `json:"expression"`
}

type partyCodeResponse struct {
	Input               string         `json:"input,omitempty"`
	Valid               bool           `json:"valid"`
	Details             string         `json:"details,omitempty"`
	Indices             []int          `json:"indices"`
	SelectedItems       []itemResponse `json:"selectedItems"`
	Steps               []stepResponse `json:"steps"`
	IntermediateResults []int          `json:"intermediateResults"`
	BaseCode            int            `json:"baseCode"`
	FinalCode           int            `json:"finalCode"`
	Adjustment          string         `json:"adjustment"`
	AdjustmentLine      string         `json:"adjustmentLine"`
	Message             string         `json:"message"`
}

func newPartyCodeResponse(raw string, indices []int, result party.Result) partyCodeResponse {
	resp := partyCodeResponse{
		Input:               raw,
		Valid:               true,
		Indices:             indices,
		SelectedItems:       make([]itemResponse, 0, len(result.SelectedItems)),
		IntermediateResults: result.IntermediateResults,
		BaseCode:            result.BaseCode,
		FinalCode:           result.FinalCode,
		Adjustment:          string(result.Adjustment),
		AdjustmentLine:      result.AdjustmentLine(),
		Message:             result.Message,
	}
	for _, item := range result.SelectedItems {
		resp.SelectedItems = append(resp.SelectedItems, newItemResponse(item))
	}
	steps := result.Steps()
	resp.Steps = make([]stepResponse, 0, len(steps))
	for _, step := range steps {
		resp.Steps = append(resp.Steps, stepResponse{
			Left:       step.Left,
			Right:      step.Right,
			Result:     step.Result,
			Expression: step.String(),
		})
	}
	return resp
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
