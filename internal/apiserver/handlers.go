package apiserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/schema"
	"github.com/treasuryfx/currency-api/internal/model"
	"go.uber.org/zap"
)

const (
	convertEndpoint = "/convert"
	healthEndpoint  = "/health"
	metricsEndpoint = "/metrics"
)

type ConversionResponse struct {
	Amount          float64   `json:"amount"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	ConvertedAmount float64   `json:"converted_amount"`
	Rate            float64   `json:"rate"`
	Timestamp       time.Time `json:"timestamp"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

type ErrorResponse struct {
	Error              string            `json:"error"`
	Message            string            `json:"message"`
	Details            map[string]string `json:"details,omitempty"`
	AvailableEndpoints []string          `json:"available_endpoints,omitempty"`
	AllowedMethods     []string          `json:"allowed_methods,omitempty"`
}

func (s *APIServer) handleConvert(w http.ResponseWriter, r *http.Request) {
	params, err := valuesToConvertParams(r.URL.Query())
	if err != nil {
		writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid parameters",
			Message: "error reading query parameters",
		})

		return
	}

	request, fieldErrs := s.validator.Validate(*params)
	if len(fieldErrs) > 0 {
		details := make(map[string]string, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			details[fieldErr.Field] = fieldErr.Message
		}

		s.metrics.TrackConversion("rejected")

		writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid parameters",
			Message: fieldErrs[0].Message,
			Details: details,
		})

		return
	}

	rate, err := s.converter.EffectiveRate(request.From, request.To)
	if err != nil {
		s.handleConversionFault(w, err)

		return
	}

	convertedAmount, err := s.converter.Convert(request.Amount, request.From, request.To)
	if err != nil {
		s.handleConversionFault(w, err)

		return
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")

	s.metrics.TrackConversion("converted")

	writeJSONResponse(w, http.StatusOK, ConversionResponse{
		Amount:          request.Amount,
		From:            request.From,
		To:              request.To,
		ConvertedAmount: convertedAmount,
		Rate:            rate,
		Timestamp:       time.Now().UTC(),
	})

	zap.L().Debug("successful GET:/convert",
		zap.Float64("amount", request.Amount),
		zap.String("from", request.From),
		zap.String("to", request.To),
		zap.Float64("converted", convertedAmount))
}

// handleConversionFault surfaces converter-level faults. Validation runs
// first, so landing here means the two layers disagree about the catalog.
func (s *APIServer) handleConversionFault(w http.ResponseWriter, err error) {
	zap.L().With(zap.Error(err)).Warn("handleConvert/s.converter")

	s.metrics.TrackConversion("failed")

	writeJSONResponse(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "Conversion failed",
		Message: err.Error(),
	})
}

func (s *APIServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, http.StatusOK, HealthResponse{
		Status: "healthy",
		Uptime: time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func (s *APIServer) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.handleMethodNotAllowed(w, r)

		return
	}

	writeJSONResponse(w, http.StatusNotFound, ErrorResponse{
		Error:              "Not found",
		Message:            fmt.Sprintf("%s is not a known endpoint", r.URL.Path),
		AvailableEndpoints: []string{convertEndpoint, healthEndpoint},
	})
}

func (s *APIServer) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)

	writeJSONResponse(w, http.StatusMethodNotAllowed, ErrorResponse{
		Error:          "Method not allowed",
		Message:        fmt.Sprintf("%s is not allowed, this API is read only", r.Method),
		AllowedMethods: []string{http.MethodGet},
	})
}

func valuesToConvertParams(values url.Values) (*model.ConvertParams, error) {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	params := &model.ConvertParams{}

	if err := decoder.Decode(params, values); err != nil {
		return nil, fmt.Errorf("decoder.Decode(params, values): %w", err)
	}

	return params, nil
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().With(zap.Error(err)).Warn("writeJSONResponse/json.NewEncoder(w).Encode(body)")
	}
}
