package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGatewayProcessPayment(t *testing.T) {
	gw := NewSimulatedGateway()
	gw.Latency = time.Millisecond
	gw.SuccessRate = 1

	result, err := gw.ProcessPayment(context.Background(), 450, "card")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.PaymentID, "pay_"))
	assert.Equal(t, 450.0, result.Amount)
	assert.Equal(t, "card", result.PaymentMethod)
}

func TestSimulatedGatewayDecline(t *testing.T) {
	gw := NewSimulatedGateway()
	gw.Latency = time.Millisecond
	gw.SuccessRate = 0

	_, err := gw.ProcessPayment(context.Background(), 450, "card")
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.NotEmpty(t, gwErr.Message)
}

func TestSimulatedGatewayContextCancel(t *testing.T) {
	gw := NewSimulatedGateway()
	gw.Latency = time.Minute
	gw.SuccessRate = 1

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gw.ProcessPayment(ctx, 450, "card")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatedGatewayRefund(t *testing.T) {
	gw := NewSimulatedGateway()
	gw.Latency = time.Millisecond

	result, err := gw.RefundPayment(context.Background(), "pay_abc123def")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.RefundID, "re_"))
}
