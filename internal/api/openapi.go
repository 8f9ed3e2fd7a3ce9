package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"
)

const (
	paramStockSymbol    = "stock_symbol"
	paramSentimentLabel = "sentiment_label"
	paramStartDate      = "start_date"
	paramEndDate        = "end_date"

	sentimentTrendsPath = "/api/sentiment-trends"
)

type queryParam struct {
	Name        string
	Format      string
	Description string
}

type recordField struct {
	Name        string
	Type        string
	Format      string
	Description string
}

// trendFilterParams describes the query parameters parseTrendFilter reads
var trendFilterParams = []queryParam{
	{Name: paramStockSymbol, Description: "Filter by stock symbol"},
	{Name: paramSentimentLabel, Description: "Filter by sentiment label"},
	{Name: paramStartDate, Format: "date", Description: "Filter by start date (YYYY-MM-DD), applied together with end_date"},
	{Name: paramEndDate, Format: "date", Description: "Filter by end date (YYYY-MM-DD), applied together with start_date"},
}

// sentimentRecordFields mirrors the JSON form of models.SentimentRecord
var sentimentRecordFields = []recordField{
	{Name: "stock_symbol", Type: "string", Description: "Stock symbol"},
	{Name: "published_at", Type: "string", Format: "date", Description: "Published date"},
	{Name: "sentiment_label", Type: "string", Description: "Sentiment label"},
	{Name: "confidence_score", Type: "number", Description: "Confidence score"},
}

func typeOf(name string) *openapi3.Types {
	return &openapi3.Types{name}
}

// BuildAPIDocument renders the Swagger document for the sentiment trends API.
// In legacy mode errors are answered with 200, so only that response is listed.
func BuildAPIDocument(legacyErrorStatus bool) ([]byte, error) {
	params := make(openapi2.Parameters, 0, len(trendFilterParams))
	for _, p := range trendFilterParams {
		params = append(params, &openapi2.Parameter{
			Name:        p.Name,
			In:          "query",
			Type:        typeOf(openapi3.TypeString),
			Format:      p.Format,
			Description: p.Description,
		})
	}

	props := make(openapi2.Schemas, len(sentimentRecordFields))
	for _, f := range sentimentRecordFields {
		props[f.Name] = &openapi2.SchemaRef{Value: &openapi2.Schema{
			Type:        typeOf(f.Type),
			Format:      f.Format,
			Description: f.Description,
		}}
	}

	responses := map[string]*openapi2.Response{
		"200": {
			Description: "A list of sentiment trends",
			Schema: &openapi2.SchemaRef{Value: &openapi2.Schema{
				Type: typeOf(openapi3.TypeArray),
				Items: &openapi2.SchemaRef{Value: &openapi2.Schema{
					Type:       typeOf(openapi3.TypeObject),
					Properties: props,
				}},
			}},
		},
	}
	if !legacyErrorStatus {
		errorSchema := &openapi2.SchemaRef{Value: &openapi2.Schema{
			Type: typeOf(openapi3.TypeObject),
			Properties: openapi2.Schemas{
				"error": {Value: &openapi2.Schema{Type: typeOf(openapi3.TypeString), Description: "Error message"}},
			},
		}}
		responses["400"] = &openapi2.Response{Description: "Malformed date filter", Schema: errorSchema}
		responses["500"] = &openapi2.Response{Description: "The query could not be executed", Schema: errorSchema}
	}

	doc := openapi2.T{
		Swagger: "2.0",
		Info: openapi3.Info{
			Title:       "Sentiment Trends API",
			Description: "API for retrieving sentiment trends from news articles.",
			Version:     "1.0.0",
		},
		BasePath: "/",
		Produces: []string{"application/json"},
	}
	doc.AddOperation(sentimentTrendsPath, http.MethodGet, &openapi2.Operation{
		Summary:    "Get sentiment trends",
		Parameters: params,
		Responses:  responses,
	})

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal api document: %w", err)
	}
	return data, nil
}

// serveAPIDocument returns a handler that writes a pre-rendered document
func serveAPIDocument(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(doc)
	}
}
