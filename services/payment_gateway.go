package services

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"staybook-backend/utils"

	"github.com/google/uuid"
)

type PaymentResult struct {
	PaymentID     string  `json:"paymentId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type RefundResult struct {
	RefundID string `json:"refundId"`
}

// GatewayError is a decline reported by the payment provider. Its message
// is safe to surface to the caller; the booking is left untouched.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string { return e.Message }

// PaymentGateway is the external payment collaborator. Implementations
// must honor ctx cancellation; callers treat calls as blocking external
// I/O and do not retry automatically.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, amount float64, method string) (*PaymentResult, error)
	RefundPayment(ctx context.Context, paymentID string) (*RefundResult, error)
}

// SimulatedGateway stands in for a real provider: network-like latency
// and a nondeterministic success rate. Latency and rate come from
// PAYMENT_LATENCY_MS / PAYMENT_SUCCESS_RATE when set.
type SimulatedGateway struct {
	Latency     time.Duration
	SuccessRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedGateway() *SimulatedGateway {
	latencyMs, err := strconv.Atoi(utils.EnvOrDefault("PAYMENT_LATENCY_MS", "1500"))
	if err != nil || latencyMs < 0 {
		latencyMs = 1500
	}
	rate, err := strconv.ParseFloat(utils.EnvOrDefault("PAYMENT_SUCCESS_RATE", "0.9"), 64)
	if err != nil || rate < 0 || rate > 1 {
		rate = 0.9
	}
	return &SimulatedGateway{
		Latency:     time.Duration(latencyMs) * time.Millisecond,
		SuccessRate: rate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *SimulatedGateway) roll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *SimulatedGateway) ProcessPayment(ctx context.Context, amount float64, method string) (*PaymentResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.Latency):
	}

	if g.roll() >= g.SuccessRate {
		return nil, &GatewayError{Message: "Payment processing failed. Please try again."}
	}

	return &PaymentResult{
		PaymentID:     "pay_" + shortID(),
		Amount:        amount,
		PaymentMethod: method,
	}, nil
}

func (g *SimulatedGateway) RefundPayment(ctx context.Context, paymentID string) (*RefundResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.Latency * 2 / 3):
	}
	return &RefundResult{RefundID: "re_" + shortID()}, nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
