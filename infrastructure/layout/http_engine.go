// Package layout talks to an external layout service that computes node
// positions for visualization graphs.
package layout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"sysmap-backend/domain"
	pkgerrors "sysmap-backend/pkg/errors"
)

// HTTPEngine asks a layout service for positions. Failures trip a circuit
// breaker so a down service degrades to the caller's fallback placement
// instead of adding latency to every graph request.
type HTTPEngine struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

type layoutRequest struct {
	Nodes []layoutNode `json:"nodes"`
	Edges []layoutEdge `json:"edges"`
}

type layoutNode struct {
	ID   string `json:"id"`
	Tier string `json:"tier"`
}

type layoutEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type layoutResponse struct {
	Positions map[string]domain.Position `json:"positions"`
}

// NewHTTPEngine creates an engine bound to the service at url.
func NewHTTPEngine(url string, logger *zap.Logger) *HTTPEngine {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "layout-service",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Layout breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &HTTPEngine{
		url:     url,
		client:  &http.Client{Timeout: 5 * time.Second},
		breaker: breaker,
		logger:  logger,
	}
}

// Layout requests positions for the given nodes and edges.
func (e *HTTPEngine) Layout(nodes []domain.GraphNode, edges []domain.GraphEdge) (map[string]domain.Position, error) {
	req := layoutRequest{
		Nodes: make([]layoutNode, 0, len(nodes)),
		Edges: make([]layoutEdge, 0, len(edges)),
	}
	for _, n := range nodes {
		req.Nodes = append(req.Nodes, layoutNode{ID: n.ID, Tier: string(n.Tier)})
	}
	for _, edge := range edges {
		req.Edges = append(req.Edges, layoutEdge{Source: edge.Source, Target: edge.Target})
	}

	result, err := e.breaker.Execute(func() (interface{}, error) {
		return e.post(req)
	})
	if err != nil {
		return nil, pkgerrors.NewExternalError("layout", err)
	}
	return result.(map[string]domain.Position), nil
}

func (e *HTTPEngine) post(req layoutRequest) (map[string]domain.Position, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode layout request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("layout service returned %d", resp.StatusCode)
	}

	var decoded layoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode layout response: %w", err)
	}
	if decoded.Positions == nil {
		return nil, fmt.Errorf("layout response missing positions")
	}
	return decoded.Positions, nil
}
