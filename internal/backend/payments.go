package backend

import (
	"context"

	"github.com/iliyamo/bus-booking-gateway/internal/model"
)

// ProcessPayment charges the passenger for an existing booking.  A
// decline is not an error: the call succeeds with Success=false and the
// booking stays PENDING upstream.  Only transport/server failures
// return an error.
func (c *Client) ProcessPayment(ctx context.Context, req model.PaymentRequest) (model.PaymentResult, error) {
	var out model.PaymentResult
	if err := c.post(ctx, "process payment", "/payments/process", req, &out); err != nil {
		return model.PaymentResult{}, err
	}
	return out, nil
}
