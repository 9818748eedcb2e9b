package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStripeGatewayUnconfigured(t *testing.T) {
	assert.Nil(t, NewStripeGateway(""))
	assert.NotNil(t, NewStripeGateway("sk_test_123"))
}
