package lead

import (
	"context"
	"errors"
	"fmt"

	"github.com/rezillion/backend/internal/domain/catalog"
	"github.com/rezillion/backend/internal/domain/identity"
	"github.com/rezillion/backend/internal/domain/shared"
	"github.com/rezillion/backend/internal/infrastructure/mail"
	"go.uber.org/zap"
)

// ContactSupplierInput carries a buyer inquiry about a listing. Product is
// the listing as the buyer saw it in the catalog, so pricing and specs in
// the email match what was on screen.
type ContactSupplierInput struct {
	UserEmail string
	Product   map[string]any
}

// LeadService turns buyer inquiries into emails to the listing's supplier
type LeadService struct {
	supplierRepo identity.SupplierRepository
	sender       mail.Sender
	fallbackTo   string // operator address used when the supplier cannot be resolved
	logger       *zap.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(
	supplierRepo identity.SupplierRepository,
	sender mail.Sender,
	fallbackTo string,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		supplierRepo: supplierRepo,
		sender:       sender,
		fallbackTo:   fallbackTo,
		logger:       logger,
	}
}

// ContactSupplier resolves the supplier's address and sends the inquiry
// with the buyer's address as Reply-To. An unresolvable supplier reference
// routes the lead to the operator address instead of failing: a lead is
// revenue and is never dropped for a stale reference.
func (s *LeadService) ContactSupplier(ctx context.Context, input ContactSupplierInput) error {
	supplierID, hasSupplier := catalog.AsInt64(input.Product[catalog.FieldSupplierID])
	if input.UserEmail == "" || len(input.Product) == 0 || !hasSupplier {
		return shared.NewDomainError("VALIDATION_ERROR", "Missing product or supplier details")
	}

	to := s.fallbackTo
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	switch {
	case err == nil:
		to = supplier.Email
	case errors.Is(err, shared.ErrNotFound):
		s.logger.Warn("Lead for unknown supplier, routing to operator",
			zap.Int64("supplier_id", supplierID))
	default:
		s.logger.Error("Failed to resolve supplier for lead",
			zap.Int64("supplier_id", supplierID), zap.Error(err))
		return shared.NewDomainError("DISPATCH_FAILED", "Server Error")
	}

	productName, _ := input.Product[catalog.FieldName].(string)

	msg := mail.Message{
		To:      to,
		ReplyTo: input.UserEmail,
		Subject: fmt.Sprintf("New Lead: %s", productName),
		HTML:    leadBody(input.UserEmail, input.Product),
	}

	if err := s.sender.Send(msg); err != nil {
		s.logger.Error("Failed to send lead email",
			zap.Int64("supplier_id", supplierID), zap.Error(err))
		return shared.NewDomainError("DISPATCH_FAILED", "Server Error")
	}

	s.logger.Info("Lead dispatched",
		zap.Int64("supplier_id", supplierID),
		zap.String("to", to))
	return nil
}

func leadBody(userEmail string, product map[string]any) string {
	name := product[catalog.FieldName]
	power := product[catalog.AttrPower]
	technology := product[catalog.AttrTechnology]
	priceEx := product[catalog.AttrPriceEx]

	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #eee;">
          <h2 style="color: #ea580c;">New Purchase Inquiry</h2>
          <p>You have a new lead for your product.</p>

          <div style="background: #f9fafb; padding: 15px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Product:</strong> %v</p>
            <p><strong>Specs:</strong> %vWp, %v</p>
            <p><strong>Listed Price:</strong> &#8377;%v/Wp</p>
          </div>

          <h3>Buyer Contact:</h3>
          <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>

          <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;" />
          <p style="font-size: 12px; color: #666;">
            This lead was generated via the Rezillion Supply Chain Platform.
          </p>
        </div>
    `, name, power, technology, priceEx, userEmail, userEmail)
}
